package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"miniblog/internal/i18n"
	"miniblog/internal/service"
	"miniblog/internal/session"
)

// Renderer отвечает за HTML-вывод: выбор шаблона и передача в него
// сессии, языка и накопленного списка ошибок.
type Renderer struct {
	templates  *template.Template
	translator *i18n.Translator
}

type ViewData struct {
	Lang    string
	Session session.Session
	Errors  []string
	Data    map[string]interface{}
}

func NewRenderer(dir string, translator *i18n.Translator) (*Renderer, error) {
	funcs := template.FuncMap{
		"t": translator.T,
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
		// перенос строки в тексте поста превращается в <br>,
		// сам текст при этом экранируется
		"nl2br": func(s string) template.HTML {
			escaped := template.HTMLEscapeString(s)
			return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
		},
		// дисковые ссылки относительные, MinIO отдаёт абсолютный URL
		"imgsrc": func(ref string) string {
			if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
				return ref
			}
			return "/" + ref
		},
	}

	templates, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить шаблоны из %s: %w", dir, err)
	}

	return &Renderer{
		templates:  templates,
		translator: translator,
	}, nil
}

// Translator отдаёт каталог переводов, например для middleware сессии.
func (re *Renderer) Translator() *i18n.Translator {
	return re.translator
}

func (re *Renderer) Render(w http.ResponseWriter, statusCode int, view string, data ViewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := re.templates.ExecuteTemplate(w, view+".html", data); err != nil {
		log.Printf("ошибка рендеринга шаблона %s: %v", view, err)
	}
}

// viewData собирает данные для шаблона из контекста запроса. Ошибки
// переводятся здесь: сервисы оперируют только ключами.
func (h *Handlers) viewData(r *http.Request, errs ...error) ViewData {
	s := session.FromContext(r.Context())

	var messages []string
	for _, err := range errs {
		if err == nil {
			continue
		}

		key := "err_db"
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			key = vErr.Key
		}

		messages = append(messages, h.Renderer.translator.T(s.Lang, key))
	}

	return ViewData{
		Lang:    s.Lang,
		Session: s,
		Errors:  messages,
		Data:    map[string]interface{}{},
	}
}
