// Package missions holds the static mission cards and the draw policy used when a
// token lands on a place.
package missions

import (
	_ "embed"
	"fmt"

	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed missions.yaml
var defaultMissions []byte

// Selector draws a mission for a place
type Selector interface {
	// Select returns a uniformly drawn mission for place, preferring difficulty when
	// the place has cards of that tier
	Select(place models.Place, difficulty models.Difficulty, roller dice.Roller) (*models.Mission, error)
}

type missionFile struct {
	Missions []struct {
		ID          string `yaml:"id"`
		Place       string `yaml:"place"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Amount      int    `yaml:"amount"`
		Difficulty  string `yaml:"difficulty"`
		Kind        string `yaml:"kind"`
		Deduction   *int   `yaml:"deduction"`
	} `yaml:"missions"`
}

// Catalog is an immutable collection of missions indexed by place
type Catalog struct {
	all     []models.Mission
	byPlace map[models.Place][]models.Mission
}

// Load parses the embedded mission cards
func Load() (*Catalog, error) {
	return Parse(defaultMissions)
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var file missionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mission catalog: %w", err)
	}

	list := make([]models.Mission, 0, len(file.Missions))
	for _, m := range file.Missions {
		list = append(list, models.Mission{
			ID:          m.ID,
			Place:       models.Place(m.Place),
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			Difficulty:  models.Difficulty(m.Difficulty),
			Kind:        models.MissionKind(m.Kind),
			Deduction:   m.Deduction,
		})
	}

	return New(list)
}

// New validates the missions and indexes them by place
func New(list []models.Mission) (*Catalog, error) {
	seen := make(map[string]bool, len(list))
	byPlace := make(map[models.Place][]models.Mission)

	for _, m := range list {
		if m.ID == "" {
			return nil, ErrMissingID
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMission, m.ID)
		}
		seen[m.ID] = true

		if m.Amount <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, m.ID)
		}
		if m.Deduction != nil && *m.Deduction < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDeduction, m.ID)
		}
		if !m.Place.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlace, m.ID)
		}
		if !m.Difficulty.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDifficulty, m.ID)
		}

		byPlace[m.Place] = append(byPlace[m.Place], m)
	}

	return &Catalog{
		all:     append([]models.Mission(nil), list...),
		byPlace: byPlace,
	}, nil
}

// Len returns the number of missions
func (c *Catalog) Len() int {
	return len(c.all)
}

// ForPlace returns a copy of the missions offered at place
func (c *Catalog) ForPlace(place models.Place) []models.Mission {
	return append([]models.Mission(nil), c.byPlace[place]...)
}

// Select filters by place, narrows by difficulty only when that leaves candidates,
// and draws uniformly
func (c *Catalog) Select(place models.Place, difficulty models.Difficulty, roller dice.Roller) (*models.Mission, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}

	candidates := c.byPlace[place]
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMissionAvailable, place)
	}

	if difficulty != "" {
		var tier []models.Mission
		for _, m := range candidates {
			if m.Difficulty == difficulty {
				tier = append(tier, m)
			}
		}
		if len(tier) > 0 {
			candidates = tier
		}
	}

	picked := candidates[dice.Pick(roller, len(candidates))]
	if picked.Deduction != nil {
		deduction := *picked.Deduction
		picked.Deduction = &deduction
	}
	return &picked, nil
}
