package switchboard

import (
	"errors"

	"github.com/ettle/strcase"
)

type Page string

const (
	PageDashboard     Page = "dashboard"
	PageUsers         Page = "users"
	PageReports       Page = "reports"
	PageLogs          Page = "logs"
	PageTodo          Page = "todo"
	PageCalendar      Page = "calendar"
	PageNotifications Page = "notifications"
	PageSettings      Page = "settings"
)

var ErrUnknownPage = errors.New("unknown page")

// Pages is the sidebar order.
var Pages = []Page{
	PageDashboard,
	PageUsers,
	PageReports,
	PageLogs,
	PageTodo,
	PageCalendar,
	PageNotifications,
	PageSettings,
}

func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnknownPage
}

// Title is the sidebar label, e.g. "Notifications".
func (p Page) Title() string {
	return strcase.ToPascal(string(p))
}

// Ready reports whether the page has a body; the rest show a placeholder.
func (p Page) Ready() bool {
	switch p {
	case PageCalendar, PageNotifications:
		return false
	}
	return true
}
