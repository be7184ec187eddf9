package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"miniblog/cmd/app"
	"miniblog/internal/config"
	"miniblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, handler, err := app.App(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации приложения: %v", err)
	}
	defer db.CloseDB()

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/login", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)
	router.HandleFunc("/language", handler.Language).Methods(http.MethodGet)

	router.HandleFunc("/post/create", handler.RequireAuth(handler.CreatePost)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/post/show", handler.ShowPost).Methods(http.MethodGet)
	router.HandleFunc("/comment/add", handler.RequireAuth(handler.AddComment)).Methods(http.MethodPost)

	// uploaded images and static assets
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("public/static"))))

	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.SessionMiddleware(handler.Sessions, handler.Renderer.Translator()),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Адрес: http://localhost:%d/\n", cfg.ServerPort)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
