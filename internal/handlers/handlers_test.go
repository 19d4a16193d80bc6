package handlers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"adminpanel/internal/charts"
	"adminpanel/internal/logger"
	"adminpanel/internal/middleware"
	"adminpanel/internal/mockdata"
	"adminpanel/internal/storage"
	"adminpanel/internal/store"
	"adminpanel/internal/switchboard"
	"adminpanel/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPanel struct {
	server *httptest.Server
	client *http.Client
	data   *switchboard.Data
}

func newTestPanel(t *testing.T) *testPanel {
	t.Helper()
	templates, err := LoadTemplates(web.Templates())
	require.NoError(t, err)

	seed, err := mockdata.Default()
	require.NoError(t, err)
	mem := store.NewMemory(nil)
	data, err := switchboard.NewData(seed, mem.Users(), mem.Tasks())
	require.NoError(t, err)

	log := logger.Discard()
	cookies := storage.NewCookieStore("test-secret-test-secret-test-sec", 3600, false)
	renderer := charts.NewRenderer(charts.WithCache(charts.NewTTLCache(0)))
	sbMiddleware := middleware.NewSwitchboardMiddleware(cookies, data, renderer, log)

	server := httptest.NewServer(NewRouter(templates, sbMiddleware, log))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testPanel{server: server, client: client, data: data}
}

func (p *testPanel) get(t *testing.T, path string, headers ...string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, p.server.URL+path, nil)
	require.NoError(t, err)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return p.do(t, req)
}

func (p *testPanel) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, p.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return p.do(t, req)
}

func (p *testPanel) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := p.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (p *testPanel) login(t *testing.T, name, role string) {
	t.Helper()
	resp, _ := p.post(t, "/login", url.Values{"username": {name}, "role": {role}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLoggedOutIsSentToLogin(t *testing.T) {
	p := newTestPanel(t)

	resp, _ := p.get(t, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, body := p.get(t, "/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="username"`)
}

func TestLoginThenDashboard(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "manager")

	resp, body := p.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "alice (Manager)")
	assert.Contains(t, body, "Server Load")
	for _, id := range []string{"daily-users", "role-distribution", "feedback-ratings", "system-health"} {
		assert.Contains(t, body, `id="chart-`+id+`"`)
	}

	resp, _ = p.get(t, "/login")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	p := newTestPanel(t)

	resp, body := p.post(t, "/login", url.Values{"username": {"eve"}, "role": {"root"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "alert-error")

	resp, _ = p.get(t, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestIndexRedirectsToDashboard(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, _ := p.get(t, "/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestEveryPageRenders(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	for _, page := range switchboard.Pages {
		t.Run(string(page), func(t *testing.T) {
			resp, body := p.get(t, "/"+string(page))
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `class="active"`)
			if !page.Ready() {
				assert.Contains(t, body, "Coming soon: "+string(page))
			}
		})
	}
}

func TestReportsCharts(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	_, body := p.get(t, "/reports")
	assert.Equal(t, 3, strings.Count(body, `class="chart-frame"`))
	assert.NotContains(t, body, "chart-daily-users")
}

func TestUnknownPageIsNotFound(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, _ := p.get(t, "/billing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogsPage(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	_, body := p.get(t, "/logs")
	assert.Contains(t, body, "192.168.1.2")
	assert.Contains(t, body, "Wrong password")
	assert.Contains(t, body, "Added user")
}

func TestAddAndDeleteUser(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	_, body := p.get(t, "/users")
	require.Equal(t, 3, strings.Count(body, `id="user-`))

	resp, _ := p.post(t, "/users", url.Values{"name": {"dave"}, "role": {"Manager"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = p.get(t, "/users")
	assert.Equal(t, 4, strings.Count(body, `id="user-`))
	assert.Contains(t, body, "dave")

	resp, _ = p.post(t, "/users", url.Values{"name": {"   "}, "role": {"User"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = p.get(t, "/users")
	assert.Equal(t, 4, strings.Count(body, `id="user-`))

	users, err := p.data.Users.List()
	require.NoError(t, err)
	dave := users[3]
	require.Equal(t, "dave", dave.Name)
	assert.False(t, dave.Online)

	resp, _ = p.post(t, "/users/"+strconv.FormatInt(dave.ID, 10)+"/delete", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	after, err := p.data.Users.List()
	require.NoError(t, err)
	assert.Equal(t, users[:3], after)
}

func TestAddUserWithUnknownRole(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, body := p.post(t, "/users", url.Values{"name": {"dave"}, "role": {"Owner"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "alert-error")
	users, err := p.data.Users.List()
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestDeleteUserWithHTMX(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")
	users, err := p.data.Users.List()
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, p.server.URL+"/users/"+strconv.FormatInt(users[0].ID, 10), nil)
	require.NoError(t, err)
	req.Header.Set("HX-Request", "true")
	resp, _ := p.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	after, err := p.data.Users.List()
	require.NoError(t, err)
	assert.Equal(t, users[1:], after)
}

func TestViewUser(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")
	users, err := p.data.Users.List()
	require.NoError(t, err)
	path := "/users/" + strconv.FormatInt(users[2].ID, 10)

	resp, body := p.get(t, path, "HX-Request", "true")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "User: carol")
	assert.NotContains(t, body, "<html")

	resp, body = p.get(t, path)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "User: carol")
	assert.Contains(t, body, "<html")

	resp, _ = p.get(t, "/users/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = p.get(t, "/users/abc")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToggleDarkModeTwice(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, _ := p.post(t, "/ui/dark-mode", url.Values{"return": {"/logs"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/logs", resp.Header.Get("Location"))
	_, body := p.get(t, "/logs")
	assert.Contains(t, body, `class="dark-mode"`)

	p.post(t, "/ui/dark-mode", url.Values{"return": {"/logs"}})
	_, body = p.get(t, "/logs")
	assert.NotContains(t, body, `class="dark-mode"`)
}

func TestToggleSidebar(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, _ := p.post(t, "/ui/sidebar", url.Values{"return": {"https://evil.example"}})
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	_, body := p.get(t, "/settings")
	assert.Contains(t, body, "sidebar collapsed")
	assert.Contains(t, body, "collapsed</p>")
}

func TestTasks(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	for _, f := range []url.Values{
		{"title": {"Ship release"}, "priority": {"High"}, "due": {"2025-07-20"}},
		{"title": {"Tidy backlog"}, "priority": {"Low"}, "assigned_to": {"bob"}},
		{"title": {"Fix login"}, "priority": {"High"}},
		{"title": {"  "}, "priority": {"High"}},
	} {
		resp, _ := p.post(t, "/todo/tasks", f)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	_, body := p.get(t, "/todo")
	assert.Contains(t, body, "Ship release")
	assert.Contains(t, body, "Tidy backlog")
	assert.Contains(t, body, "Unassigned")

	resp, body := p.get(t, "/todo?priority=High", "HX-Request", "true", "HX-Target", "task-table")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "Ship release")
	assert.Contains(t, body, "Fix login")
	assert.NotContains(t, body, "Tidy backlog")

	_, body = p.get(t, "/todo?priority=urgent")
	assert.Contains(t, body, "alert-error")
	assert.Contains(t, body, "Tidy backlog")
}

func TestAddTaskWithBadDue(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")

	resp, body := p.post(t, "/todo/tasks", url.Values{"title": {"x"}, "due": {"soon"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "alert-error")
	tasks, err := p.data.Tasks.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLogout(t *testing.T) {
	p := newTestPanel(t)
	p.login(t, "alice", "admin")
	p.post(t, "/ui/dark-mode", url.Values{"return": {"/dashboard"}})

	resp, _ := p.post(t, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, _ = p.get(t, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body := p.get(t, "/login")
	assert.NotContains(t, body, `class="dark-mode"`)
}

func TestHTMXLoginRedirect(t *testing.T) {
	p := newTestPanel(t)
	req, err := http.NewRequest(http.MethodPost, p.server.URL+"/login", strings.NewReader("username=alice&role=user"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")

	resp, _ := p.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("HX-Redirect"))
}

func TestHealthz(t *testing.T) {
	p := newTestPanel(t)
	resp, body := p.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestReturnPath(t *testing.T) {
	assert.Equal(t, "/reports", returnPath("/reports"))
	assert.Equal(t, "/dashboard", returnPath("reports"))
	assert.Equal(t, "/dashboard", returnPath("//evil.example"))
	assert.Equal(t, "/dashboard", returnPath(""))
}
