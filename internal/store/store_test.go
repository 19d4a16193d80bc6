package store

import (
	"fmt"
	"testing"
	"time"

	"adminpanel/internal/database"
	"adminpanel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collections interface {
	Users() UserRepository
	Tasks() TaskRepository
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func backends(t *testing.T) map[string]collections {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]collections{
		"memory": NewMemory(NewIDSource(fixedClock(1000))),
		"sqlite": NewSQLite(db, NewIDSource(fixedClock(1000))),
	}
}

func TestIDSourceStaysUniqueOnStalledClock(t *testing.T) {
	ids := NewIDSource(fixedClock(1000))
	assert.Equal(t, int64(1000), ids.Next())
	assert.Equal(t, int64(1001), ids.Next())
	assert.Equal(t, int64(1002), ids.Next())
}

func TestIDSourceObserve(t *testing.T) {
	ids := NewIDSource(fixedClock(1000))
	ids.Observe(5000)
	assert.Equal(t, int64(5001), ids.Next())
}

func TestUserRepository(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			users := c.Users()

			alice, err := users.Add("alice", models.RoleAdmin, true)
			require.NoError(t, err)
			bob, err := users.Add("bob", models.RoleUser, false)
			require.NoError(t, err)
			carol, err := users.Add("carol", models.RoleManager, true)
			require.NoError(t, err)
			assert.NotEqual(t, alice.ID, bob.ID)

			list, err := users.List()
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, []string{"alice", "bob", "carol"}, []string{list[0].Name, list[1].Name, list[2].Name})

			got, err := users.Get(bob.ID)
			require.NoError(t, err)
			assert.Equal(t, *bob, *got)

			require.NoError(t, users.Delete(bob.ID))
			list, err = users.List()
			require.NoError(t, err)
			assert.Equal(t, []models.User{*alice, *carol}, list)

			assert.ErrorIs(t, users.Delete(bob.ID), ErrUserNotFound)
			_, err = users.Get(bob.ID)
			assert.ErrorIs(t, err, ErrUserNotFound)
		})
	}
}

func TestTaskRepository(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			tasks := c.Tasks()
			require.NoError(t, tasks.Add(models.Task{Title: "a", Status: "Pending", Priority: models.PriorityHigh}))
			require.NoError(t, tasks.Add(models.Task{Title: "b", Status: "Pending", Priority: models.PriorityLow}))
			require.NoError(t, tasks.Add(models.Task{Title: "c", AssignedTo: "bob", Due: "2025-08-01", Status: "Pending", Priority: models.PriorityHigh}))

			all, err := tasks.List()
			require.NoError(t, err)
			assert.Len(t, all, 3)

			high, err := tasks.ListByPriority(models.PriorityHigh)
			require.NoError(t, err)
			require.Len(t, high, 2)
			assert.Equal(t, "a", high[0].Title)
			assert.Equal(t, "c", high[1].Title)
			assert.Equal(t, "bob", high[1].AssignedTo)

			medium, err := tasks.ListByPriority(models.PriorityMedium)
			require.NoError(t, err)
			assert.Empty(t, medium)
		})
	}
}
