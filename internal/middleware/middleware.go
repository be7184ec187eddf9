package middleware

import (
	"log"
	"net/http"
	"time"

	"miniblog/internal/i18n"
	"miniblog/internal/session"
)

type Middleware func(http.Handler) http.Handler

// SessionMiddleware один раз на запрос разбирает cookie сессии и кладёт
// её в контекст. Если язык ещё не выбран, берётся из Accept-Language.
func SessionMiddleware(manager *session.Manager, translator *i18n.Translator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := manager.Read(r)

			if !translator.Supported(s.Lang) {
				s.Lang = translator.Negotiate(r.Header.Get("Accept-Language"))
			}

			ctx := session.NewContext(r.Context(), s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("Method: %s, URL: %s, Duration: %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
