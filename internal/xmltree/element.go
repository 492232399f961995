package xmltree

// Attr is a single key/value attribute on an element.
type Attr struct {
	Key   string
	Value string
}

// Element is a node in an in-memory XML document. Attributes keep their
// insertion order so serialized output is stable.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

func New(tag string) *Element {
	return &Element{Tag: tag}
}

// SubElement creates a child tagged tag and appends it to parent.
func SubElement(parent *Element, tag string) *Element {
	child := New(tag)
	parent.Children = append(parent.Children, child)
	return child
}

// Set assigns an attribute, overwriting an existing value in place.
func (e *Element) Set(key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of direct children.
func (e *Element) Len() int {
	return len(e.Children)
}

// Walk visits e and its descendants depth-first. depth is 0 for e.
func (e *Element) Walk(fn func(el *Element, depth int)) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(el *Element, depth int), depth int) {
	fn(e, depth)
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}
