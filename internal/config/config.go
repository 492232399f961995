package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/scenekit/internal/scene"
)

var (
	ErrUnknownKind = errors.New("config: unknown body kind")
	ErrMissingObj  = errors.New("config: mesh body without obj")
	ErrNoBodies    = errors.New("config: recipe has no bodies")
	ErrPlaneSpring = errors.New("config: planes are static and cannot carry springs")
)

var Kinds = []string{"mesh", "box", "sphere", "plane"}

type Recipe struct {
	Name     string         `yaml:"name"`
	Document DocumentConfig `yaml:"document"`
	Bodies   []BodySpec     `yaml:"bodies"`
}

type DocumentConfig struct {
	Gravity  string `yaml:"gravity"`
	Dt       string `yaml:"dt"`
	Merging  bool   `yaml:"merging"`
	Sleeping bool   `yaml:"sleeping"`
}

// BodySpec describes one body. Fields left out of the YAML fall back to the
// scene package defaults when the recipe is built.
type BodySpec struct {
	Kind        string       `yaml:"kind"`
	Name        string       `yaml:"name"`
	Obj         string       `yaml:"obj,omitempty"`
	Position    string       `yaml:"position,omitempty"`
	Orientation string       `yaml:"orientation,omitempty"`
	Velocity    string       `yaml:"velocity,omitempty"`
	Omega       string       `yaml:"omega,omitempty"`
	Scale       string       `yaml:"scale,omitempty"`
	ST          string       `yaml:"st,omitempty"`
	Pinned      bool         `yaml:"pinned,omitempty"`
	Magnetic    bool         `yaml:"magnetic,omitempty"`
	Density     string       `yaml:"density,omitempty"`
	Restitution string       `yaml:"restitution,omitempty"`
	Friction    string       `yaml:"friction,omitempty"`
	Color       string       `yaml:"color,omitempty"`
	Dim         string       `yaml:"dim,omitempty"`
	Radius      string       `yaml:"radius,omitempty"`
	Normal      string       `yaml:"normal,omitempty"`
	Springs     []SpringSpec `yaml:"springs,omitempty"`
}

type SpringSpec struct {
	PositionB  string `yaml:"pB,omitempty"`
	K          string `yaml:"k,omitempty"`
	D          string `yaml:"d,omitempty"`
	Body2      string `yaml:"body2,omitempty"`
	PositionW  string `yaml:"pW,omitempty"`
	PositionB2 string `yaml:"pB2,omitempty"`
}

func DefaultRecipe() *Recipe {
	return &Recipe{
		Name: "scene",
		Document: DocumentConfig{
			Gravity: scene.DefaultGravity,
			Dt:      scene.DefaultTimestep,
		},
	}
}

func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Recipe, error) {
	r := DefaultRecipe()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}

func Save(path string, r *Recipe) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks what the builders cannot: body kinds, mesh files and
// springs on static planes. It returns warnings for springs whose second-body
// pairing will be dropped.
func (r *Recipe) Validate() ([]string, error) {
	if len(r.Bodies) == 0 {
		return nil, ErrNoBodies
	}

	var warnings []string
	for i, b := range r.Bodies {
		if !knownKind(b.Kind) {
			return warnings, fmt.Errorf("body %d (%s): %w: %q", i, b.Name, ErrUnknownKind, b.Kind)
		}
		if b.Kind == "mesh" && b.Obj == "" {
			return warnings, fmt.Errorf("body %d (%s): %w", i, b.Name, ErrMissingObj)
		}
		if b.Kind == "plane" && len(b.Springs) > 0 {
			return warnings, fmt.Errorf("body %d (%s): %w", i, b.Name, ErrPlaneSpring)
		}
		for j, s := range b.Springs {
			if s.Spring().PartialPair() {
				warnings = append(warnings, fmt.Sprintf("body %s spring %d: body2 and pB2 must be given together, pairing dropped", b.Name, j))
			}
		}
	}
	return warnings, nil
}

func knownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (d DocumentConfig) Scene() scene.DocumentConfig {
	return scene.DocumentConfig{
		Gravity:  d.Gravity,
		Dt:       d.Dt,
		Merging:  d.Merging,
		Sleeping: d.Sleeping,
	}
}

// Mesh returns the rigid body parameters with scene defaults filled in.
func (b BodySpec) Mesh() scene.MeshConfig {
	cfg := scene.DefaultMeshConfig()
	override(&cfg.Name, b.Name)
	override(&cfg.Position, b.Position)
	override(&cfg.Orientation, b.Orientation)
	override(&cfg.Velocity, b.Velocity)
	override(&cfg.AngularVelocity, b.Omega)
	override(&cfg.Scale, b.Scale)
	override(&cfg.Density, b.Density)
	cfg.ST = b.ST
	cfg.Pinned = b.Pinned
	cfg.Magnetic = b.Magnetic
	cfg.Restitution = b.Restitution
	cfg.Friction = b.Friction
	cfg.Color = b.Color
	return cfg
}

// Spring returns the spring parameters with scene defaults filled in.
func (s SpringSpec) Spring() scene.SpringConfig {
	cfg := scene.DefaultSpringConfig()
	override(&cfg.PositionB, s.PositionB)
	override(&cfg.K, s.K)
	override(&cfg.D, s.D)
	cfg.Body2 = s.Body2
	cfg.PositionW = s.PositionW
	cfg.PositionB2 = s.PositionB2
	return cfg
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
