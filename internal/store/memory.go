package store

import (
	"sync"

	"adminpanel/internal/models"
)

// Memory holds both collections as ordered slices.
type Memory struct {
	mu    sync.RWMutex
	ids   *IDSource
	users []models.User
	tasks []models.Task
}

func NewMemory(ids *IDSource) *Memory {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	return &Memory{ids: ids}
}

func (m *Memory) Users() UserRepository { return memoryUsers{m} }
func (m *Memory) Tasks() TaskRepository { return memoryTasks{m} }

type memoryUsers struct{ m *Memory }

func (r memoryUsers) List() ([]models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.User(nil), r.m.users...), nil
}

func (r memoryUsers) Get(id int64) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r memoryUsers) Add(name string, role models.Role, online bool) (*models.User, error) {
	user := models.User{ID: r.m.ids.Next(), Name: name, Role: role, Online: online}
	r.m.mu.Lock()
	r.m.users = append(r.m.users, user)
	r.m.mu.Unlock()
	return &user, nil
}

func (r memoryUsers) Delete(id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	kept := r.m.users[:0:0]
	for _, u := range r.m.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(r.m.users) {
		return ErrUserNotFound
	}
	r.m.users = kept
	return nil
}

type memoryTasks struct{ m *Memory }

func (r memoryTasks) List() ([]models.Task, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.Task(nil), r.m.tasks...), nil
}

func (r memoryTasks) ListByPriority(p models.Priority) ([]models.Task, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.Task
	for _, t := range r.m.tasks {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memoryTasks) Add(task models.Task) error {
	r.m.mu.Lock()
	r.m.tasks = append(r.m.tasks, task)
	r.m.mu.Unlock()
	return nil
}
