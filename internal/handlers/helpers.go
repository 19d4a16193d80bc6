package handlers

import (
	"net/http"
	"strings"

	"adminpanel/internal/middleware"
	"adminpanel/internal/switchboard"

	charmlog "github.com/charmbracelet/log"
)

// base carries what every handler needs to answer with HTML.
type base struct {
	templates TemplateExecutor
	log       *charmlog.Logger
}

func (b base) render(w http.ResponseWriter, name string, data interface{}) {
	body, err := renderBuffered(b.templates, name, data)
	if err != nil {
		b.log.Error("template error", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (b base) renderAlert(w http.ResponseWriter, alertType, message string) {
	b.render(w, "alert.html", map[string]interface{}{
		"Type":    alertType,
		"Message": message,
	})
}

// saveStorage writes the request's local storage back to the browser. It
// must run before anything is written to w.
func (b base) saveStorage(w http.ResponseWriter, r *http.Request) bool {
	local := middleware.GetStorage(r)
	if local == nil {
		return true
	}
	if err := local.Save(w, r); err != nil {
		b.log.Error("failed to save storage", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}

// pageData is the layout data shared by every full page.
func pageData(sb *switchboard.Switchboard) map[string]interface{} {
	return map[string]interface{}{
		"Title":            sb.ActivePage().Title(),
		"ActivePage":       sb.ActivePage(),
		"Pages":            switchboard.Pages,
		"Session":          sb.Session(),
		"DarkMode":         sb.DarkMode(),
		"SidebarCollapsed": sb.SidebarCollapsed(),
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// isFragment reports an htmx request that swaps part of a page, as opposed
// to a boosted navigation that replaces the whole body.
func isFragment(r *http.Request) bool {
	return isHTMX(r) && r.Header.Get("HX-Boosted") != "true"
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	if isFragment(r) {
		w.Header().Set("HX-Redirect", to)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// returnPath keeps redirects inside the panel: only "/<page>" is accepted.
func returnPath(v string) string {
	if page, err := switchboard.ParsePage(strings.TrimPrefix(v, "/")); err == nil && strings.HasPrefix(v, "/") {
		return "/" + string(page)
	}
	return "/" + string(switchboard.PageDashboard)
}
