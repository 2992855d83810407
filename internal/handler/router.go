package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Base       *Handler
	Pages      *PageHandler
	Contact    *ContactHandler
	Newsletter *NewsletterHandler
	API        *ContentAPIHandler
	Limiter    *RateLimiter
}

// NewRouter wires the site's routes and middleware.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(rt.Base.CORS)

	// Pages
	r.Get("/", rt.Pages.Home)
	r.Get("/Caracteristicas", rt.Pages.Features)
	r.Get("/Acerca de", rt.Pages.About)
	r.Get("/Contacto", rt.Pages.Contact)
	r.Handle("/static/*", StaticFiles())

	// Writes (rate limited)
	r.Group(func(r chi.Router) {
		r.Use(rt.Limiter.Middleware)
		r.Post("/Contacto", rt.Contact.Submit)
		r.Post("/api/newsletter", rt.Newsletter.Subscribe)
	})

	// Read-only data APIs
	r.Get("/api/caracteristicas", rt.API.Features)
	r.Get("/api/testimonios", rt.API.Testimonials)
	r.Get("/api/estadisticas", rt.API.Statistics)
	r.Get("/api/health", rt.Base.Health)

	return r
}
