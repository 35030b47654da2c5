package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// all origins, methods, and headers are deliberately permitted
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/test", h.status)

	router.Route("/notes", func(r chi.Router) {
		r.Post("/", h.createNote)
		r.Get("/", h.listNotes)
		r.Get("/{noteID}", h.getNote)
		r.Patch("/{noteID}", h.updateNote)
		r.Delete("/{noteID}", h.deleteNote)
		r.Post("/{noteID}/images", h.appendImages)
	})

	router.Post("/upload-image", h.uploadImage)
	router.Get("/image/{imageID}", h.downloadImage)

	return router
}
