package handlers

import (
	"log"
	"net/http"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAllPosts(r.Context())
	if err != nil {
		log.Printf("ошибка при получении постов: %v", err)
		data := h.viewData(r, err)
		h.Renderer.Render(w, http.StatusInternalServerError, "home", data)
		return
	}

	data := h.viewData(r)
	data.Data["Posts"] = posts
	h.Renderer.Render(w, http.StatusOK, "home", data)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusNotFound, "404", h.viewData(r))
}
