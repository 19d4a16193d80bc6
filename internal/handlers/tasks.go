package handlers

import (
	"errors"
	"net/http"

	"adminpanel/internal/middleware"
	"adminpanel/internal/models"
	"adminpanel/internal/switchboard"

	charmlog "github.com/charmbracelet/log"
)

type TasksHandler struct {
	base
}

func NewTasksHandler(templates TemplateExecutor, log *charmlog.Logger) *TasksHandler {
	return &TasksHandler{base: base{templates: templates, log: log}}
}

func (h *TasksHandler) Add(w http.ResponseWriter, r *http.Request) {
	sb := middleware.GetSwitchboard(r)
	if err := r.ParseForm(); err != nil {
		h.renderAlert(w, "error", "Invalid form data")
		return
	}

	task, err := sb.AddTask(models.TaskInput{
		Title:      r.FormValue("title"),
		AssignedTo: r.FormValue("assigned_to"),
		Due:        r.FormValue("due"),
		Priority:   r.FormValue("priority"),
	})
	switch {
	case errors.Is(err, switchboard.ErrBlankTitle):
		// Blank titles are ignored without feedback.
	case err != nil:
		h.renderTodo(w, sb, "Task not added: check the due date and priority")
		return
	default:
		h.log.Info("task added", "title", task.Title, "priority", task.Priority)
	}
	redirect(w, r, "/todo")
}

func (h *TasksHandler) renderTodo(w http.ResponseWriter, sb *switchboard.Switchboard, errMsg string) {
	if err := sb.Navigate(switchboard.PageTodo); err != nil {
		h.log.Error("navigation failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	tasks, err := sb.FilterTasks("")
	if err != nil {
		h.log.Error("failed to list tasks", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data := pageData(sb)
	data["Tasks"] = tasks
	data["PriorityFilter"] = ""
	data["Priorities"] = models.Priorities
	data["Error"] = errMsg
	h.render(w, "todo.html", data)
}
