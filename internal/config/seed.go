package config

import (
	"fmt"

	"github.com/WillyV3/todoflow/internal/duration"
	"github.com/WillyV3/todoflow/internal/task"
)

// Apply populates store with the configured seed groups, in file order.
func (c *Config) Apply(store *task.Store) error {
	for _, g := range c.Seed {
		snap := store.AddParent(g.Name)
		idx := snap.Len() - 1
		for _, child := range g.Children {
			secs, err := seedSeconds(child.Duration)
			if err != nil {
				return fmt.Errorf("seeding %q: %w", g.Name, err)
			}
			if _, err := store.AddChild(idx, child.Code, secs); err != nil {
				return fmt.Errorf("seeding %q: %w", g.Name, err)
			}
		}
	}
	return nil
}

// seedSeconds parses a seed duration and bounds it to what the wheel picker
// can show.
func seedSeconds(s string) (int, error) {
	secs, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}
	if secs > duration.MaxTotal {
		return 0, fmt.Errorf("%w: %q exceeds %ds", duration.ErrInvalidDuration, s, duration.MaxTotal)
	}
	return secs, nil
}

// Sample returns a config with a few example groups.
func Sample() *Config {
	cfg := Default()
	cfg.Seed = []SeedGroup{
		{
			Name: "Work",
			Children: []SeedChild{
				{Code: "EmailABC", Duration: "1h2m3s"},
				{Code: "Standup", Duration: "15m"},
				{Code: "Review PR", Duration: "45m"},
			},
		},
		{
			Name: "Home",
			Children: []SeedChild{
				{Code: "Laundry", Duration: "40m"},
				{Code: "Stretch", Duration: "600"},
			},
		},
		{
			Name: "Study",
		},
	}
	return cfg
}
