package handlers

import (
	"errors"
	"net/http"
	"strings"

	"adminpanel/internal/middleware"
	"adminpanel/internal/models"

	charmlog "github.com/charmbracelet/log"
)

// AuthHandler serves the cosmetic login. Nothing is verified.
type AuthHandler struct {
	base
}

func NewAuthHandler(templates TemplateExecutor, log *charmlog.Logger) *AuthHandler {
	return &AuthHandler{base: base{templates: templates, log: log}}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	if sb.Session().LoggedIn {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, "login.html", h.loginData(sb.Session().Username, string(sb.Session().Role), ""))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	if err := r.ParseForm(); err != nil {
		h.render(w, "login.html", h.loginData("", "", "Invalid form data"))
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	role := r.FormValue("role")

	if err := sb.Login(username, role); err != nil {
		if errors.Is(err, models.ErrInvalidRole) {
			h.render(w, "login.html", h.loginData(username, "", "Choose one of Admin, Manager or User"))
			return
		}
		h.log.Error("login failed", "err", err)
		h.render(w, "login.html", h.loginData(username, "", "Login failed"))
		return
	}
	if !h.saveStorage(w, r) {
		return
	}

	h.log.Info("logged in", "username", username, "role", sb.Session().Role)
	redirect(w, r, "/")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	username := sb.Session().Username
	sb.Logout()
	if !h.saveStorage(w, r) {
		return
	}

	h.log.Info("logged out", "username", username)
	redirect(w, r, "/login")
}

func (h *AuthHandler) loginData(username, role, errMsg string) map[string]interface{} {
	r, err := models.ParseRole(role)
	if err != nil {
		r = models.RoleAdmin
	}
	return map[string]interface{}{
		"Title":    "Login",
		"Session":  models.Session{},
		"Username": username,
		"Role":     r,
		"Roles":    models.Roles,
		"Error":    errMsg,
	}
}
