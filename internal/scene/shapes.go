package scene

import "github.com/san-kum/scenekit/internal/xmltree"

const (
	DefaultBoxDim       = "1 1 1"
	DefaultSphereRadius = "1"
	DefaultPlanePoint   = "0 0 0"
	DefaultPlaneNormal  = "0 1 0"
)

// BoxBody is a rigid cuboid. It shares the mesh parameters except obj.
type BoxBody struct {
	Body
}

func NewBox(root *xmltree.Element, f ElementFactory, dim string, cfg MeshConfig) (*BoxBody, error) {
	p := cfg.params("")
	p.Extra = []xmltree.Attr{{Key: "dim", Value: dim}}
	b, err := newBody(root, f, "box", p)
	if err != nil {
		return nil, err
	}
	return &BoxBody{Body: b}, nil
}

// SphereBody is a rigid sphere of the given radius.
type SphereBody struct {
	Body
}

func NewSphere(root *xmltree.Element, f ElementFactory, radius string, cfg MeshConfig) (*SphereBody, error) {
	p := cfg.params("")
	p.Extra = []xmltree.Attr{{Key: "radius", Value: radius}}
	b, err := newBody(root, f, "sphere", p)
	if err != nil {
		return nil, err
	}
	return &SphereBody{Body: b}, nil
}

// NewPlane appends a static collision plane through point p with normal n.
// Planes are never dynamic, so they bypass the body factory.
func NewPlane(root *xmltree.Element, name, p, n string) (*xmltree.Element, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	plane := xmltree.SubElement(root, "plane")
	plane.Set("name", name)
	plane.Set("p", p)
	plane.Set("n", n)
	return plane, nil
}
