package switchboard

import (
	"fmt"

	"adminpanel/internal/mockdata"
	"adminpanel/internal/models"
	"adminpanel/internal/store"
)

// NewData fills empty repositories with the seed users and keeps the seed
// logs and summary cards as they are.
func NewData(seed *mockdata.Seed, users store.UserRepository, tasks store.TaskRepository) (*Data, error) {
	existing, err := users.List()
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		for _, u := range seed.Users {
			role, err := models.ParseRole(u.Role)
			if err != nil {
				return nil, fmt.Errorf("seed user %q: %w", u.Name, err)
			}
			if _, err := users.Add(u.Name, role, u.Online); err != nil {
				return nil, fmt.Errorf("failed to seed user %q: %w", u.Name, err)
			}
		}
	}
	return &Data{
		Users:   users,
		Tasks:   tasks,
		Logs:    seed.Logs.Clone(),
		Summary: append([]models.SummaryCard(nil), seed.Summary...),
	}, nil
}
