package handlers

import (
	"net/http"

	"miniblog/internal/session"
)

// RequireAuth закрывает действия, доступные только после входа.
// Анонима без сообщений отправляем на форму логина.
func (h *Handlers) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).LoggedIn() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
