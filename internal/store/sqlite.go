package store

import (
	"database/sql"
	"errors"
	"fmt"

	"adminpanel/internal/database"
	"adminpanel/internal/models"
)

// SQLite keeps the collections in a database.DB. Rows come back in
// insertion order.
type SQLite struct {
	db  *database.DB
	ids *IDSource
}

func NewSQLite(db *database.DB, ids *IDSource) *SQLite {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	return &SQLite{db: db, ids: ids}
}

func (s *SQLite) Users() UserRepository { return sqliteUsers{s} }
func (s *SQLite) Tasks() TaskRepository { return sqliteTasks{s} }

type sqliteUsers struct{ s *SQLite }

func (r sqliteUsers) List() ([]models.User, error) {
	rows, err := r.s.db.Query("SELECT id, name, role, online FROM users ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.Online); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r sqliteUsers) Get(id int64) (*models.User, error) {
	var user models.User
	err := r.s.db.QueryRow(
		"SELECT id, name, role, online FROM users WHERE id = ?", id,
	).Scan(&user.ID, &user.Name, &user.Role, &user.Online)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r sqliteUsers) Add(name string, role models.Role, online bool) (*models.User, error) {
	user := models.User{ID: r.s.ids.Next(), Name: name, Role: role, Online: online}
	if _, err := r.s.db.Exec(
		"INSERT INTO users (id, name, role, online) VALUES (?, ?, ?, ?)",
		user.ID, user.Name, string(user.Role), user.Online,
	); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (r sqliteUsers) Delete(id int64) error {
	result, err := r.s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

type sqliteTasks struct{ s *SQLite }

func (r sqliteTasks) List() ([]models.Task, error) {
	return r.query("SELECT title, assigned_to, due, status, priority FROM tasks ORDER BY seq")
}

func (r sqliteTasks) ListByPriority(p models.Priority) ([]models.Task, error) {
	return r.query("SELECT title, assigned_to, due, status, priority FROM tasks WHERE priority = ? ORDER BY seq", string(p))
}

func (r sqliteTasks) Add(task models.Task) error {
	if _, err := r.s.db.Exec(
		"INSERT INTO tasks (title, assigned_to, due, status, priority) VALUES (?, ?, ?, ?, ?)",
		task.Title, task.AssignedTo, task.Due, task.Status, string(task.Priority),
	); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r sqliteTasks) query(q string, args ...any) ([]models.Task, error) {
	rows, err := r.s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.Title, &task.AssignedTo, &task.Due, &task.Status, &task.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
