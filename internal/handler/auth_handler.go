package handlers

import (
	"net/http"

	"miniblog/internal/service"
	"miniblog/internal/session"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.Renderer.Render(w, http.StatusOK, "login", h.viewData(r))
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	// пустые поля неотличимы от неверной пары логин/пароль
	if err := h.Validate.Struct(form); err != nil {
		h.renderLoginFailed(w, r)
		return
	}

	user, err := h.AuthService.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		h.Renderer.Render(w, http.StatusInternalServerError, "login", h.viewData(r, err))
		return
	}

	if user == nil {
		h.renderLoginFailed(w, r)
		return
	}

	s := session.FromContext(r.Context())
	s.UserID = user.ID
	s.Username = user.Username

	if err := h.Sessions.Write(w, s); err != nil {
		h.Renderer.Render(w, http.StatusInternalServerError, "login", h.viewData(r, err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) renderLoginFailed(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "login", h.viewData(r, service.ErrLoginFailed))
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := h.viewData(r)
		data.Data["Username"] = ""
		h.Renderer.Render(w, http.StatusOK, "register", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	passwordRepeat := r.FormValue("password_repeat")

	err := h.AuthService.Register(r.Context(), username, password, passwordRepeat)
	if err != nil {
		data := h.viewData(r, err)
		data.Data["Username"] = username
		h.Renderer.Render(w, http.StatusOK, "register", data)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Language переключает язык интерфейса. Код проверяется по списку
// поддерживаемых языков, всё остальное молча игнорируется.
func (h *Handlers) Language(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	if h.Renderer.translator.Supported(code) {
		s := session.FromContext(r.Context())
		s.Lang = code

		if err := h.Sessions.Write(w, s); err != nil {
			WriteError(w, "Не удалось сохранить сессию", http.StatusInternalServerError)
			return
		}
	}

	referer := r.Referer()
	if referer == "" {
		referer = "/"
	}

	http.Redirect(w, r, referer, http.StatusSeeOther)
}
