package handlers

import (
	"errors"
	"net/http"
	"strings"

	"adminpanel/internal/middleware"
	"adminpanel/internal/models"
	"adminpanel/internal/switchboard"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// PageHandler renders the body of whichever page the sidebar selected.
type PageHandler struct {
	base
}

func NewPageHandler(templates TemplateExecutor, log *charmlog.Logger) *PageHandler {
	return &PageHandler{base: base{templates: templates, log: log}}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+string(switchboard.PageDashboard), http.StatusSeeOther)
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	name := chi.URLParam(r, "page")
	if name == "" {
		name = strings.TrimPrefix(r.URL.Path, "/")
	}
	page := switchboard.Page(name)

	if err := sb.Navigate(page); err != nil {
		if errors.Is(err, switchboard.ErrUnknownPage) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("navigation failed", "page", page, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(sb)
	if err := h.fill(sb, r, data); err != nil {
		h.log.Error("failed to load page data", "page", page, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if page == switchboard.PageTodo && r.Header.Get("HX-Target") == "task-table" {
		h.render(w, "task_table.html", data)
		return
	}
	h.render(w, templateFor(page), data)
}

// fill adds the page-specific entries to data.
func (h *PageHandler) fill(sb *switchboard.Switchboard, r *http.Request, data map[string]interface{}) error {
	switch sb.ActivePage() {
	case switchboard.PageDashboard:
		data["Summary"] = sb.Summary()
		data["Charts"] = sb.Charts()
	case switchboard.PageReports:
		data["Charts"] = sb.Charts()
	case switchboard.PageUsers:
		users, err := sb.Users()
		if err != nil {
			return err
		}
		data["Users"] = users
	case switchboard.PageLogs:
		data["Logs"] = sb.Logs()
	case switchboard.PageTodo:
		filter := r.URL.Query().Get("priority")
		tasks, err := sb.FilterTasks(filter)
		if errors.Is(err, models.ErrInvalidPriority) {
			data["Error"] = "Unknown priority " + filter
			filter = ""
			tasks, err = sb.FilterTasks("")
		}
		if err != nil {
			return err
		}
		data["Tasks"] = tasks
		data["PriorityFilter"] = filter
		data["Priorities"] = models.Priorities
	}
	return nil
}

func templateFor(page switchboard.Page) string {
	if !page.Ready() {
		return "placeholder.html"
	}
	return string(page) + ".html"
}
