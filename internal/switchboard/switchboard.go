// Package switchboard owns the panel's UI state and the actions that change
// it. One Switchboard serves one browser; the collections behind it are
// shared.
package switchboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adminpanel/internal/charts"
	"adminpanel/internal/models"
	"adminpanel/internal/storage"
	"adminpanel/internal/store"

	"github.com/go-playground/validator/v10"
)

var (
	ErrBlankName  = errors.New("user name is blank")
	ErrBlankTitle = errors.New("task title is blank")
)

const defaultRole = "admin"

var validate = validator.New()

// Data is the state shared by every Switchboard.
type Data struct {
	Users   store.UserRepository
	Tasks   store.TaskRepository
	Logs    models.LogBook
	Summary []models.SummaryCard
}

type Switchboard struct {
	storage storage.LocalStorage
	data    *Data
	canvas  *charts.Canvas

	activePage       Page
	sidebarCollapsed bool
	darkMode         bool
	session          models.Session
}

// New restores UI flags and the session from storage, falling back to the
// defaults for anything missing.
func New(s storage.LocalStorage, data *Data, canvas *charts.Canvas) *Switchboard {
	if canvas == nil {
		canvas = charts.NewCanvas(nil)
	}
	sb := &Switchboard{
		storage:    s,
		data:       data,
		canvas:     canvas,
		activePage: PageDashboard,
	}
	sb.load()
	return sb
}

func (sb *Switchboard) load() {
	sb.darkMode = storage.GetOr(sb.storage, storage.KeyDarkMode, "false") == "true"
	sb.sidebarCollapsed = storage.GetOr(sb.storage, storage.KeySidebarCollapsed, "false") == "true"
	sb.session.LoggedIn = storage.GetOr(sb.storage, storage.KeyLoggedIn, "false") == "true"
	sb.session.Username = storage.GetOr(sb.storage, storage.KeyUsername, "")
	role, err := models.ParseRole(storage.GetOr(sb.storage, storage.KeyUserRole, defaultRole))
	if err != nil {
		role = models.RoleAdmin
	}
	sb.session.Role = role
}

func (sb *Switchboard) ActivePage() Page { return sb.activePage }
func (sb *Switchboard) DarkMode() bool { return sb.darkMode }
func (sb *Switchboard) SidebarCollapsed() bool { return sb.sidebarCollapsed }
func (sb *Switchboard) Session() models.Session { return sb.session }
func (sb *Switchboard) Charts() []*charts.Widget { return sb.canvas.Widgets() }

// Navigate switches the active page. Chart widgets of the previous page are
// destroyed first; chart pages then get a fresh set.
func (sb *Switchboard) Navigate(page Page) error {
	if _, err := ParsePage(string(page)); err != nil {
		return fmt.Errorf("%w: %q", err, page)
	}
	sb.activePage = page
	if _, err := sb.canvas.Mount(string(page), charts.ThemeFor(sb.darkMode)); err != nil {
		return fmt.Errorf("failed to mount charts: %w", err)
	}
	return nil
}

func (sb *Switchboard) ToggleSidebar() bool {
	sb.sidebarCollapsed = !sb.sidebarCollapsed
	sb.storage.Set(storage.KeySidebarCollapsed, strconv.FormatBool(sb.sidebarCollapsed))
	return sb.sidebarCollapsed
}

func (sb *Switchboard) ToggleDarkMode() bool {
	sb.darkMode = !sb.darkMode
	sb.storage.Set(storage.KeyDarkMode, strconv.FormatBool(sb.darkMode))
	return sb.darkMode
}

// Login marks the session as logged in. There is no credential check.
func (sb *Switchboard) Login(name, role string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		return fmt.Errorf("%w: %q", err, role)
	}
	sb.session = models.Session{LoggedIn: true, Username: name, Role: r}
	sb.storage.Set(storage.KeyLoggedIn, "true")
	sb.storage.Set(storage.KeyUsername, name)
	sb.storage.Set(storage.KeyUserRole, strings.ToLower(string(r)))
	return nil
}

// Logout wipes local storage, dark mode included.
func (sb *Switchboard) Logout() {
	sb.storage.Clear()
	sb.session = models.Session{}
	sb.darkMode = false
	sb.sidebarCollapsed = false
	sb.canvas.Destroy()
	sb.activePage = PageDashboard
}

func (sb *Switchboard) Users() ([]models.User, error) {
	return sb.data.Users.List()
}

func (sb *Switchboard) FindUser(id int64) (*models.User, error) {
	return sb.data.Users.Get(id)
}

// AddUser appends an offline user. A blank name is rejected with ErrBlankName.
func (sb *Switchboard) AddUser(name, role string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, role)
	}
	return sb.data.Users.Add(name, r, false)
}

func (sb *Switchboard) DeleteUser(id int64) error {
	return sb.data.Users.Delete(id)
}

// AddTask appends a pending task. A blank title is rejected with ErrBlankTitle.
func (sb *Switchboard) AddTask(in models.TaskInput) (*models.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.AssignedTo = strings.TrimSpace(in.AssignedTo)
	in.Due = strings.TrimSpace(in.Due)
	if in.Title == "" {
		return nil, ErrBlankTitle
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Priority" {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, in.Priority)
		}
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	task := models.Task{
		Title:      in.Title,
		AssignedTo: in.AssignedTo,
		Due:        in.Due,
		Status:     models.TaskStatusPending,
		Priority:   models.PriorityLow,
	}
	if in.Priority != "" {
		task.Priority = models.Priority(in.Priority)
	}
	if err := sb.data.Tasks.Add(task); err != nil {
		return nil, err
	}
	return &task, nil
}

// FilterTasks returns tasks whose priority equals filter exactly. An empty
// filter returns every task.
func (sb *Switchboard) FilterTasks(filter string) ([]models.Task, error) {
	if filter == "" {
		return sb.data.Tasks.List()
	}
	p, err := models.ParsePriority(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, filter)
	}
	return sb.data.Tasks.ListByPriority(p)
}

func (sb *Switchboard) Logs() models.LogBook {
	return sb.data.Logs.Clone()
}

func (sb *Switchboard) Summary() []models.SummaryCard {
	return append([]models.SummaryCard(nil), sb.data.Summary...)
}
