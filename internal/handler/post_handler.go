package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/internal/session"
)

type commentForm struct {
	PostID  int    `validate:"gt=0"`
	Content string `validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := h.viewData(r)
		data.Data["Title"] = ""
		data.Data["Content"] = ""
		h.Renderer.Render(w, http.StatusOK, "post_create", data)
		return
	}

	// жёсткий серверный лимит на тело запроса, прикладная проверка
	// в 5 MiB на картинку делается отдельно в сервисе
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	upload := &service.Upload{Status: service.UploadNoFile}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			upload.Status = service.UploadServerLimit
		} else {
			upload.Status = service.UploadFailed
		}
	} else {
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			upload = &service.Upload{
				File:     file,
				Filename: header.Filename,
				Size:     header.Size,
				Status:   service.UploadOK,
			}
		case errors.Is(err, http.ErrMissingFile):
			// пост без картинки
		default:
			upload.Status = service.UploadFailed
		}
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	s := session.FromContext(r.Context())

	err := h.PostService.CreatePost(r.Context(), s.UserID, title, content, upload)
	if err != nil {
		data := h.viewData(r, err)
		data.Data["Title"] = title
		data.Data["Content"] = content
		h.Renderer.Render(w, http.StatusOK, "post_create", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || postID <= 0 {
		h.NotFound(w, r)
		return
	}

	post, err := h.PostService.GetPostByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("ошибка при получении поста %d: %v", postID, err)
		data := h.viewData(r, service.ErrDatabase)
		h.Renderer.Render(w, http.StatusInternalServerError, "home", data)
		return
	}

	data := h.viewData(r)

	comments, err := h.CommentService.GetCommentsForPost(r.Context(), postID)
	if err != nil {
		log.Printf("ошибка при получении комментариев поста %d: %v", postID, err)
		data = h.viewData(r, service.ErrDatabase)
	}

	data.Data["Post"] = post
	data.Data["Comments"] = comments
	h.Renderer.Render(w, http.StatusOK, "post_show", data)
}

// AddComment пишет комментарий и возвращает к посту. Пустой текст или
// кривой id поста - тихий no-op, как и задумано: форма не ругается.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	postID, _ := strconv.Atoi(r.FormValue("post_id"))
	content := r.FormValue("content")

	form := commentForm{PostID: postID, Content: content}
	if err := h.Validate.Struct(form); err == nil {
		s := session.FromContext(r.Context())

		if err := h.CommentService.AddComment(r.Context(), postID, s.UserID, content); err != nil {
			log.Printf("ошибка при сохранении комментария к посту %d: %v", postID, err)
		}
	}

	if postID > 0 {
		http.Redirect(w, r, "/post/show?id="+strconv.Itoa(postID), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
