// Package scenario loads system and body definitions from TOML files. A
// scenario is the full initial condition set for one simulation: display
// name, gravitational constant and the body roster.
package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/orbitarium/event"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/vmath"
)

// BodyDef is one body's initial condition as authored in a scenario file
type BodyDef struct {
	Name     string     `toml:"name"`
	Mass     float64    `toml:"mass"`
	Radius   float64    `toml:"radius"`
	Color    string     `toml:"color"`
	Position [2]float64 `toml:"position"`
	Velocity [2]float64 `toml:"velocity"`
}

// Spawn converts the definition into the engine's spawn command payload
func (d *BodyDef) Spawn() event.Spawn {
	return event.Spawn{
		Name:   d.Name,
		Mass:   d.Mass,
		Radius: d.Radius,
		Color:  d.Color,
		Pos:    vmath.Vec2{X: d.Position[0], Y: d.Position[1]},
		Vel:    vmath.Vec2{X: d.Velocity[0], Y: d.Velocity[1]},
	}
}

// Scenario is a complete system definition
type Scenario struct {
	DisplayName        string    `toml:"display_name"`
	GravitationalConst float64   `toml:"gravitational_const"`
	Bodies             []BodyDef `toml:"bodies"`
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario TOML
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.DisplayName == "" {
		return fmt.Errorf("scenario missing display_name")
	}
	if s.GravitationalConst == 0 {
		s.GravitationalConst = parameter.DefaultGravitationalConst
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if b.Name == "" {
			return fmt.Errorf("body %d missing name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Mass <= 0 {
			return fmt.Errorf("body %q: mass %v must be positive", b.Name, b.Mass)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("body %q: radius %v must be positive", b.Name, b.Radius)
		}
	}
	return nil
}

// Default returns the built-in demo system used when no scenario file is
// given: a heavy central body with two light companions on bound orbits
func Default() *Scenario {
	return &Scenario{
		DisplayName:        "Default System",
		GravitationalConst: 1.0,
		Bodies: []BodyDef{
			{
				Name:   "Sol",
				Mass:   1000,
				Radius: 3,
				Color:  "#ffcc33",
			},
			{
				Name:     "Inner",
				Mass:     1,
				Radius:   1,
				Color:    "#66aaff",
				Position: [2]float64{40, 0},
				Velocity: [2]float64{0, 5},
			},
			{
				Name:     "Outer",
				Mass:     1,
				Radius:   1,
				Color:    "#cc6655",
				Position: [2]float64{0, -90},
				Velocity: [2]float64{-3.3, 0},
			},
		},
	}
}
