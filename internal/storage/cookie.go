package storage

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const CookieName = "adminpanel-storage"

// CookieStore hands out per-request LocalStorage views over a signed cookie.
type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(secret string, maxAge int, secure bool) *CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

// Open decodes the request cookie. A tampered or stale cookie yields an empty
// storage together with the decode error, so callers may log and continue.
func (c *CookieStore) Open(r *http.Request) (*Cookie, error) {
	session, err := c.store.Get(r, CookieName)
	return &Cookie{session: session}, err
}

// Cookie is the LocalStorage of a single request. Changes are only sent to
// the browser by Save.
type Cookie struct {
	session *sessions.Session
	cleared bool
}

func (c *Cookie) Get(key string) (string, bool) {
	v, ok := c.session.Values[key].(string)
	return v, ok
}

func (c *Cookie) Set(key, value string) {
	c.session.Values[key] = value
	c.cleared = false
}

func (c *Cookie) Clear() {
	c.session.Values = make(map[interface{}]interface{})
	c.cleared = true
}

func (c *Cookie) Save(w http.ResponseWriter, r *http.Request) error {
	if c.cleared {
		opts := *c.session.Options
		opts.MaxAge = -1
		c.session.Options = &opts
	}
	return c.session.Save(r, w)
}
