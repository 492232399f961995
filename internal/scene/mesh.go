package scene

import "github.com/san-kum/scenekit/internal/xmltree"

const (
	DefaultMeshName        = "mesh"
	DefaultPosition        = "0 0 0"
	DefaultOrientation     = "0 -1 0 0"
	DefaultVelocity        = "0 0 0"
	DefaultAngularVelocity = "0 0 0"
	DefaultScale           = "1"
	DefaultDensity         = "1"
)

// MeshConfig holds the construction parameters of a mesh body. Start from
// DefaultMeshConfig and override fields; empty optional fields are left out
// of the element.
type MeshConfig struct {
	Name            string
	Position        string
	Orientation     string
	Velocity        string
	AngularVelocity string
	Scale           string
	ST              string
	Pinned          bool
	Magnetic        bool
	Density         string
	Restitution     string
	Friction        string
	Color           string
}

func DefaultMeshConfig() MeshConfig {
	return MeshConfig{
		Name:            DefaultMeshName,
		Position:        DefaultPosition,
		Orientation:     DefaultOrientation,
		Velocity:        DefaultVelocity,
		AngularVelocity: DefaultAngularVelocity,
		Scale:           DefaultScale,
		Density:         DefaultDensity,
	}
}

func (c MeshConfig) params(obj string) BodyParams {
	return BodyParams{
		Name:        c.Name,
		Position:    c.Position,
		Orientation: c.Orientation,
		Velocity:    c.Velocity,
		Omega:       c.AngularVelocity,
		Obj:         obj,
		Scale:       c.Scale,
		ST:          c.ST,
		Pinned:      c.Pinned,
		Magnetic:    c.Magnetic,
		Density:     c.Density,
		Restitution: c.Restitution,
		Friction:    c.Friction,
		Color:       c.Color,
	}
}

// MeshBody is a rigid body loaded from a 3D model file.
type MeshBody struct {
	Body
}

// NewMeshBody creates a mesh element under root through f. A nil f uses
// General. Errors from the factory are returned unchanged.
func NewMeshBody(root *xmltree.Element, f ElementFactory, obj string, cfg MeshConfig) (*MeshBody, error) {
	b, err := newBody(root, f, "mesh", cfg.params(obj))
	if err != nil {
		return nil, err
	}
	return &MeshBody{Body: b}, nil
}
