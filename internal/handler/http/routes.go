package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel))

	// unknown routes and unsupported methods look the same to clients
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Get("/verify/{verificationToken}", h.verify)
		r.Post("/verify", h.resendVerification)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/logout", h.logout)
			r.Get("/current", h.current)
			r.Patch("/", h.updateSubscription)
			r.Patch("/avatars", h.updateAvatar)
		})
	})

	router.Route("/api/contacts", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)
		r.Get("/{contactID}", h.getContact)
		r.Put("/{contactID}", h.updateContact)
		r.Delete("/{contactID}", h.deleteContact)
		r.Patch("/{contactID}/favorite", h.setFavorite)
	})

	router.Handle("/avatars/*", http.StripPrefix("/avatars/", avatarFileServer(h.avatarDir)))

	return router
}
