package models

import (
	"errors"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

const TaskStatusPending = "Pending"

var ErrInvalidPriority = errors.New("invalid priority")

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority matches exactly; the filter selector never changes case.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if s == string(p) {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}

type Task struct {
	Title      string   `json:"title"`
	AssignedTo string   `json:"assigned_to"`
	Due        string   `json:"due"`
	Status     string   `json:"status"`
	Priority   Priority `json:"priority"`
}

func (t Task) Assignee() string {
	if strings.TrimSpace(t.AssignedTo) == "" {
		return "Unassigned"
	}
	return t.AssignedTo
}

type TaskInput struct {
	Title      string `validate:"required"`
	AssignedTo string
	Due        string `validate:"omitempty,datetime=2006-01-02"`
	Priority   string `validate:"omitempty,oneof=Low Medium High"`
}
