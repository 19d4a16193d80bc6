package handlers

import (
	"net/http"

	"adminpanel/internal/middleware"

	charmlog "github.com/charmbracelet/log"
)

// UIHandler flips the presentation toggles. Neither touches any data.
type UIHandler struct {
	base
}

func NewUIHandler(templates TemplateExecutor, log *charmlog.Logger) *UIHandler {
	return &UIHandler{base: base{templates: templates, log: log}}
}

func (h *UIHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	collapsed := sb.ToggleSidebar()
	if !h.saveStorage(w, r) {
		return
	}
	h.log.Debug("sidebar toggled", "collapsed", collapsed)
	redirect(w, r, returnPath(r.FormValue("return")))
}

func (h *UIHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	dark := sb.ToggleDarkMode()
	if !h.saveStorage(w, r) {
		return
	}
	h.log.Debug("dark mode toggled", "dark", dark)
	redirect(w, r, returnPath(r.FormValue("return")))
}
