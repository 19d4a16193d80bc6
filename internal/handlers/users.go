package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"adminpanel/internal/middleware"
	"adminpanel/internal/models"
	"adminpanel/internal/store"
	"adminpanel/internal/switchboard"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

type UsersHandler struct {
	base
}

func NewUsersHandler(templates TemplateExecutor, log *charmlog.Logger) *UsersHandler {
	return &UsersHandler{base: base{templates: templates, log: log}}
}

func (h *UsersHandler) Add(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	if err := r.ParseForm(); err != nil {
		h.renderAlert(w, "error", "Invalid form data")
		return
	}

	user, err := sb.AddUser(r.FormValue("name"), r.FormValue("role"))
	switch {
	case errors.Is(err, switchboard.ErrBlankName):
		// Blank names are ignored without feedback.
	case errors.Is(err, models.ErrInvalidRole):
		h.renderUsers(w, sb, nil, "Choose one of Admin, Manager or User")
		return
	case err != nil:
		h.log.Error("failed to add user", "err", err)
		h.renderAlert(w, "error", "Failed to add user")
		return
	default:
		h.log.Info("user added", "id", user.ID, "name", user.Name, "role", user.Role)
	}
	redirect(w, r, "/users")
}

// View backs the "view" modal. htmx gets the modal alone; a plain request
// gets the users page with the modal open.
func (h *UsersHandler) View(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := sb.FindUser(id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("failed to get user", "id", id, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if isFragment(r) {
		h.render(w, "user_modal.html", map[string]interface{}{"ViewUser": user})
		return
	}
	h.renderUsers(w, sb, user, "")
}

// Delete removes one user by id. No confirmation is asked for, and a user
// that is already gone is not an error.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = sb.DeleteUser(id)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
	case err != nil:
		h.log.Error("failed to delete user", "id", id, "err", err)
		h.renderAlert(w, "error", "Failed to delete user")
		return
	default:
		h.log.Info("user deleted", "id", id)
	}

	if r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusOK)
		return
	}
	redirect(w, r, "/users")
}

func (h *UsersHandler) renderUsers(w http.ResponseWriter, sb *switchboard.Switchboard, view *models.User, errMsg string) {
	if err := sb.Navigate(switchboard.PageUsers); err != nil {
		h.log.Error("navigation failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	users, err := sb.Users()
	if err != nil {
		h.log.Error("failed to list users", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data := pageData(sb)
	data["Users"] = users
	data["Error"] = errMsg
	if view != nil {
		data["ViewUser"] = view
	}
	h.render(w, "users.html", data)
}
