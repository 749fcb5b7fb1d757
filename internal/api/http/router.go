package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/mind-engage/mindengage-rounds/internal/auth/middleware"
	"github.com/mind-engage/mindengage-rounds/internal/hub"
	"github.com/mind-engage/mindengage-rounds/internal/journal"
	"github.com/mind-engage/mindengage-rounds/internal/rbac"
)

type Deps struct {
	Hub     *hub.Hub
	Auth    *authmw.AuthService
	Journal journal.Journal

	AdminUser     string
	AdminPassHash string
}

// Mount registers the API routes on r.
func Mount(r chi.Router, d Deps) {
	r.Get("/exercises", ListExercisesHandler(d.Hub))
	r.Post("/sessions", CreateSessionHandler(d.Hub, d.Auth))
	r.Get("/demos/temperature", TemperatureHandler())
	r.Post("/auth/admin", authmw.AdminLoginHandler(d.Auth, d.AdminUser, d.AdminPassHash))

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(d.Auth))

		pr.Route("/sessions/me", func(sr chi.Router) {
			sr.With(rbac.RequireAny(rbac.PermRoundView, rbac.PermRoundPlay)).Get("/", GetSessionHandler(d.Hub))
			sr.With(rbac.Require(rbac.PermRoundPlay)).Put("/fields/{name}", SetFieldHandler(d.Hub))
			sr.With(rbac.Require(rbac.PermRoundPlay)).Post("/submit", SubmitHandler(d.Hub))
			sr.With(rbac.Require(rbac.PermRoundPlay)).Post("/new-item", NewItemHandler(d.Hub))
			sr.With(rbac.Require(rbac.PermRoundPlay)).Delete("/", DropSessionHandler(d.Hub))
		})

		pr.With(rbac.Require(rbac.PermJournalView)).Get("/admin/rounds", ListRoundsHandler(d.Journal))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
}
