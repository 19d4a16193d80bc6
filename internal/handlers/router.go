package handlers

import (
	"net/http"

	"adminpanel/internal/middleware"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route of the panel.
func NewRouter(templates TemplateExecutor, sbMiddleware *middleware.SwitchboardMiddleware, log *charmlog.Logger) http.Handler {
	authHandler := NewAuthHandler(templates, log)
	pageHandler := NewPageHandler(templates, log)
	uiHandler := NewUIHandler(templates, log)
	usersHandler := NewUsersHandler(templates, log)
	tasksHandler := NewTasksHandler(templates, log)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(sbMiddleware.Attach)

		// Public routes
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Logged-in routes
		r.Group(func(r chi.Router) {
			r.Use(sbMiddleware.RequireLogin)

			r.Get("/", pageHandler.Index)

			r.Post("/ui/sidebar", uiHandler.ToggleSidebar)
			r.Post("/ui/dark-mode", uiHandler.ToggleDarkMode)

			r.Get("/users", pageHandler.Show)
			r.Post("/users", usersHandler.Add)
			r.Get("/users/{id}", usersHandler.View)
			r.Delete("/users/{id}", usersHandler.Delete)
			r.Post("/users/{id}/delete", usersHandler.Delete)

			r.Post("/todo/tasks", tasksHandler.Add)

			r.Get("/{page}", pageHandler.Show)
		})
	})

	return r
}
