// Package mockdata loads the sample records the panel starts with.
package mockdata

import (
	_ "embed"
	"fmt"
	"strings"

	"adminpanel/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedUser struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Online bool   `yaml:"online"`
}

type Seed struct {
	Users   []SeedUser           `yaml:"users"`
	Logs    models.LogBook       `yaml:"logs"`
	Summary []models.SummaryCard `yaml:"summary"`
}

// Default returns the embedded seed.
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, u := range seed.Users {
		if strings.TrimSpace(u.Name) == "" {
			return nil, fmt.Errorf("seed user %d: name is required", i)
		}
		if _, err := models.ParseRole(u.Role); err != nil {
			return nil, fmt.Errorf("seed user %q: %w", u.Name, err)
		}
	}
	return &seed, nil
}
