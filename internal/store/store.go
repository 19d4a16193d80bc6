// Package store keeps the panel's user and task collections.
package store

import (
	"errors"
	"sync"
	"time"

	"adminpanel/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	List() ([]models.User, error)
	Get(id int64) (*models.User, error)
	Add(name string, role models.Role, online bool) (*models.User, error)
	Delete(id int64) error
}

type TaskRepository interface {
	List() ([]models.Task, error)
	ListByPriority(p models.Priority) ([]models.Task, error)
	Add(task models.Task) error
}

// IDSource issues user IDs from the wall clock in milliseconds. When the
// clock has not moved past the last ID, the last ID plus one is used instead.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe moves the source past ids that were issued elsewhere, e.g. seeds.
func (s *IDSource) Observe(id int64) {
	s.mu.Lock()
	if id > s.last {
		s.last = id
	}
	s.mu.Unlock()
}
