package scene

import (
	"strconv"

	"github.com/san-kum/scenekit/internal/xmltree"
)

// BodyParams holds the physical and rendering attributes of a rigid body.
// Vectors are space separated components and scalars are decimal strings,
// matching the attribute text of the scene file. Empty strings are omitted.
type BodyParams struct {
	Name        string
	Position    string
	Orientation string
	Velocity    string
	Omega       string
	Obj         string
	Scale       string
	ST          string
	Pinned      bool
	Magnetic    bool
	Density     string
	Restitution string
	Friction    string
	Color       string

	// Extra carries kind specific attributes such as a box's dim.
	Extra []xmltree.Attr
}

// ElementFactory creates body elements under a document root.
type ElementFactory interface {
	NewBody(root *xmltree.Element, kind string, p BodyParams) (*xmltree.Element, error)
}

// General is the default factory. The element tag is the body kind and every
// parameter is written verbatim as an attribute.
type General struct{}

func (General) NewBody(root *xmltree.Element, kind string, p BodyParams) (*xmltree.Element, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if kind == "" {
		return nil, ErrEmptyKind
	}

	body := xmltree.SubElement(root, kind)
	body.Set("name", p.Name)
	setNonEmpty(body, "obj", p.Obj)
	setNonEmpty(body, "scale", p.Scale)
	setNonEmpty(body, "x", p.Position)
	setNonEmpty(body, "R", p.Orientation)
	setNonEmpty(body, "v", p.Velocity)
	setNonEmpty(body, "omega", p.Omega)
	setNonEmpty(body, "st", p.ST)
	body.Set("pinned", strconv.FormatBool(p.Pinned))
	body.Set("magnetic", strconv.FormatBool(p.Magnetic))
	setNonEmpty(body, "density", p.Density)
	setNonEmpty(body, "restitution", p.Restitution)
	setNonEmpty(body, "friction", p.Friction)
	setNonEmpty(body, "color", p.Color)
	for _, a := range p.Extra {
		body.Set(a.Key, a.Value)
	}
	return body, nil
}

func setNonEmpty(e *xmltree.Element, key, value string) {
	if value != "" {
		e.Set(key, value)
	}
}

// FactoryFunc adapts a plain function to ElementFactory.
type FactoryFunc func(root *xmltree.Element, kind string, p BodyParams) (*xmltree.Element, error)

func (f FactoryFunc) NewBody(root *xmltree.Element, kind string, p BodyParams) (*xmltree.Element, error) {
	return f(root, kind, p)
}
