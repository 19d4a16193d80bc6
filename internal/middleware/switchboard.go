package middleware

import (
	"context"
	"net/http"

	"adminpanel/internal/charts"
	"adminpanel/internal/storage"
	"adminpanel/internal/switchboard"

	charmlog "github.com/charmbracelet/log"
)

type contextKey string

const (
	SwitchboardContextKey contextKey = "switchboard"
	StorageContextKey     contextKey = "storage"
)

// SwitchboardMiddleware gives every request a Switchboard bound to the
// browser's cookie storage.
type SwitchboardMiddleware struct {
	cookies  *storage.CookieStore
	data     *switchboard.Data
	renderer *charts.Renderer
	log      *charmlog.Logger
}

func NewSwitchboardMiddleware(cookies *storage.CookieStore, data *switchboard.Data, renderer *charts.Renderer, log *charmlog.Logger) *SwitchboardMiddleware {
	return &SwitchboardMiddleware{
		cookies:  cookies,
		data:     data,
		renderer: renderer,
		log:      log,
	}
}

func (m *SwitchboardMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		local, err := m.cookies.Open(r)
		if err != nil {
			// Unreadable cookie, e.g. after a secret rotation: start fresh.
			m.log.Debug("discarding storage cookie", "err", err)
		}
		sb := switchboard.New(local, m.data, charts.NewCanvas(m.renderer))

		ctx := context.WithValue(r.Context(), SwitchboardContextKey, sb)
		ctx = context.WithValue(ctx, StorageContextKey, local)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireLogin sends logged-out browsers to the login form.
func (m *SwitchboardMiddleware) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sb := GetSwitchboard(r)
		if sb == nil || !sb.Session().LoggedIn {
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/login")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetSwitchboard(r *http.Request) *switchboard.Switchboard {
	sb, _ := r.Context().Value(SwitchboardContextKey).(*switchboard.Switchboard)
	return sb
}

func GetStorage(r *http.Request) *storage.Cookie {
	c, _ := r.Context().Value(StorageContextKey).(*storage.Cookie)
	return c
}
