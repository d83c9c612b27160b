// Package board models the circular track of place cells around the bank.
package board

import (
	"fmt"

	"github.com/KirkDiggler/cuentasclaras/internal/models"
)

const (
	// DefaultSize is the number of cells on the perimeter of a 6x6 board
	DefaultSize = 20
)

// BoardError is a custom error type for board construction errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

const (
	ErrInvalidSize   BoardError = "board size must be positive"
	ErrNoPlaces      BoardError = "board needs at least one place"
	ErrUnknownPlace  BoardError = "unknown place"
	ErrPlaceNotOnMap BoardError = "every place must appear on the board"
)

// Config holds configuration for the track
type Config struct {
	// Size is the number of cells, defaults to DefaultSize
	Size int

	// Places is the cycle assigned to cells, defaults to models.PlaceOrder
	Places []models.Place
}

// Coordinate is a cell position on the square grid, zero-based
type Coordinate struct {
	Row int
	Col int
}

// Topology is an immutable cyclic sequence of place cells
type Topology struct {
	cells  []models.Place
	places []models.Place
	coords []Coordinate
	side   int
}

// New builds the track by cycling the places over the cells
func New(cfg *Config) (*Topology, error) {
	size := DefaultSize
	places := models.PlaceOrder
	if cfg != nil {
		if cfg.Size != 0 {
			size = cfg.Size
		}
		if cfg.Places != nil {
			places = cfg.Places
		}
	}

	if size < 1 {
		return nil, ErrInvalidSize
	}
	if len(places) == 0 {
		return nil, ErrNoPlaces
	}
	for _, p := range places {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlace, p)
		}
	}
	// A place the die can show but no cell carries would make movement undefined
	if size < len(places) {
		return nil, ErrPlaceNotOnMap
	}

	cells := make([]models.Place, size)
	for i := range cells {
		cells[i] = places[i%len(places)]
	}

	t := &Topology{
		cells:  cells,
		places: append([]models.Place(nil), places...),
	}

	if size >= 4 && size%4 == 0 {
		t.side = size/4 + 1
		t.coords = perimeter(t.side)
	}

	return t, nil
}

// perimeter walks a side×side square clockwise from the top-left corner
func perimeter(side int) []Coordinate {
	coords := make([]Coordinate, 0, 4*(side-1))
	for c := 0; c < side; c++ {
		coords = append(coords, Coordinate{Row: 0, Col: c})
	}
	for r := 1; r < side; r++ {
		coords = append(coords, Coordinate{Row: r, Col: side - 1})
	}
	for c := side - 2; c >= 0; c-- {
		coords = append(coords, Coordinate{Row: side - 1, Col: c})
	}
	for r := side - 2; r >= 1; r-- {
		coords = append(coords, Coordinate{Row: r, Col: 0})
	}
	return coords
}

// Size returns the number of cells
func (t *Topology) Size() int {
	return len(t.cells)
}

// Places returns the die faces in board order
func (t *Topology) Places() []models.Place {
	return append([]models.Place(nil), t.places...)
}

// Start is the cell drawn as the start; it keeps its place for gameplay
func (t *Topology) Start() int {
	return 0
}

// Normalize wraps any integer onto the track
func (t *Topology) Normalize(position int) int {
	n := len(t.cells)
	return ((position % n) + n) % n
}

// PlaceAt returns the place of the cell at position
func (t *Topology) PlaceAt(position int) models.Place {
	return t.cells[t.Normalize(position)]
}

// StepsToNext returns the smallest step in 1..Size that lands on place.
// It returns 0 only if place is not on the track.
func (t *Topology) StepsToNext(from int, place models.Place) int {
	n := len(t.cells)
	for step := 1; step <= n; step++ {
		if t.cells[(t.Normalize(from)+step)%n] == place {
			return step
		}
	}
	return 0
}

// GridSide returns the side of the square board, 0 when the track is not a square perimeter
func (t *Topology) GridSide() int {
	return t.side
}

// Coordinate maps a track position onto the square grid
func (t *Topology) Coordinate(position int) (Coordinate, bool) {
	if t.coords == nil {
		return Coordinate{}, false
	}
	return t.coords[t.Normalize(position)], true
}
