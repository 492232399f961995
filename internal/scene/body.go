package scene

import "github.com/san-kum/scenekit/internal/xmltree"

const (
	DefaultSpringAttach    = "0 0 0"
	DefaultSpringStiffness = "100"
	DefaultSpringDamping   = "10"
)

// SpringConfig describes one spring attached to a body. PositionB is in the
// body's frame. Body2 and PositionB2 name a second body and a point in its
// frame; PositionW is a world space anchor. An empty string counts as unset,
// so an empty PositionW writes no pW and an empty PositionB2 leaves the
// spring unpaired. PositionB, K and D are written even when empty.
type SpringConfig struct {
	PositionB  string
	K          string
	D          string
	Body2      string
	PositionW  string
	PositionB2 string
}

func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		PositionB: DefaultSpringAttach,
		K:         DefaultSpringStiffness,
		D:         DefaultSpringDamping,
	}
}

// Paired reports whether the spring connects to a second body.
func (s SpringConfig) Paired() bool {
	return s.Body2 != "" && s.PositionB2 != ""
}

// PartialPair reports a spring with only one of Body2 and PositionB2 set.
// AddSpring drops both attributes in that case.
func (s SpringConfig) PartialPair() bool {
	return (s.Body2 == "") != (s.PositionB2 == "")
}

// Body wraps an element created by an ElementFactory. The element is shared:
// Get hands out the same node the Body keeps appending springs to.
type Body struct {
	elem *xmltree.Element
}

func newBody(root *xmltree.Element, f ElementFactory, kind string, p BodyParams) (Body, error) {
	if f == nil {
		f = General{}
	}
	elem, err := f.NewBody(root, kind, p)
	if err != nil {
		return Body{}, err
	}
	return Body{elem: elem}, nil
}

// AddSpring appends a spring child. pB, k and d are always written.
func (b *Body) AddSpring(s SpringConfig) {
	spring := xmltree.SubElement(b.elem, "spring")
	spring.Set("pB", s.PositionB)
	spring.Set("k", s.K)
	spring.Set("d", s.D)

	if s.Paired() {
		spring.Set("body2", s.Body2)
		spring.Set("pB2", s.PositionB2)
	}

	if s.PositionW != "" {
		spring.Set("pW", s.PositionW)
	}
}

func (b *Body) Get() *xmltree.Element {
	return b.elem
}
