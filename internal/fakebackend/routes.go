package fakebackend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/sparknest-admin/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/contact", h.contact)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/messages/{id}/read", h.markRead)

		r.Get("/{kind}", h.list)
		r.Post("/{kind}", h.create)
		r.Put("/{kind}/{id}", h.update)
		r.Delete("/{kind}/{id}", h.delete)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	if h.prefix == "" {
		return router
	}

	root := chi.NewRouter()
	root.Mount(h.prefix, router)
	root.NotFound(notFound)
	return root
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
