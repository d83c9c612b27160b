// Package denomination holds the static catalog of coins and notes.
package denomination

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed denominations.yaml
var defaultCatalog []byte

type catalogFile struct {
	Denominations []struct {
		Key   string `yaml:"key"`
		Value int    `yaml:"value"`
		Label string `yaml:"label"`
		Kind  string `yaml:"kind"`
		Image string `yaml:"image"`
	} `yaml:"denominations"`
	StartingWallet map[string]int `yaml:"starting_wallet"`
}

// Catalog maps denomination keys to face values and display metadata
type Catalog struct {
	ordered  []models.Denomination
	byKey    map[models.DenominationKey]models.Denomination
	starting models.Wallet
}

// Load parses the embedded Chilean catalog
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse denomination catalog: %w", err)
	}

	list := make([]models.Denomination, 0, len(file.Denominations))
	for _, d := range file.Denominations {
		list = append(list, models.Denomination{
			Key:   models.DenominationKey(d.Key),
			Value: d.Value,
			Label: d.Label,
			Kind:  models.DenominationKind(d.Kind),
			Image: d.Image,
		})
	}

	starting := make(models.Wallet, len(file.StartingWallet))
	for k, n := range file.StartingWallet {
		starting[models.DenominationKey(k)] = n
	}

	return New(list, starting)
}

// New validates the denominations and the starting wallet
func New(list []models.Denomination, starting models.Wallet) (*Catalog, error) {
	if len(list) == 0 {
		return nil, ErrEmptyCatalog
	}

	byKey := make(map[models.DenominationKey]models.Denomination, len(list))
	for _, d := range list {
		if d.Value <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFaceValue, d.Key)
		}
		if _, exists := byKey[d.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, d.Key)
		}
		byKey[d.Key] = d
	}

	for k, n := range starting {
		if _, ok := byKey[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDenomination, k)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeCount, k)
		}
	}

	ordered := make([]models.Denomination, len(list))
	copy(ordered, list)
	// Largest first; equal face values keep their catalog order
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Value > ordered[j].Value
	})

	start := make(models.Wallet, len(starting))
	for k, n := range starting {
		start[k] = n
	}

	return &Catalog{
		ordered:  ordered,
		byKey:    byKey,
		starting: start,
	}, nil
}

// Get returns the denomination for key
func (c *Catalog) Get(key models.DenominationKey) (models.Denomination, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

// Value returns the face value of key, or 0 when unknown
func (c *Catalog) Value(key models.DenominationKey) int {
	return c.byKey[key].Value
}

// Ordered returns the denominations from largest to smallest
func (c *Catalog) Ordered() []models.Denomination {
	out := make([]models.Denomination, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// StartingWallet returns a fresh copy of the wallet every player starts with
func (c *Catalog) StartingWallet() models.Wallet {
	w := make(models.Wallet, len(c.starting))
	for k, n := range c.starting {
		w[k] = n
	}
	return w
}
