package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrNilElement = errors.New("xmltree: nil element")
	ErrNoRoot     = errors.New("xmltree: document has no root element")
)

// Encode writes root and its descendants to w, preceded by an XML
// declaration. An empty indent produces compact output.
func Encode(w io.Writer, root *Element, indent string) error {
	if root == nil {
		return ErrNilElement
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := encodeElement(enc, root); err != nil {
		return fmt.Errorf("xmltree: encode %s: %w", root.Tag, err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if indent != "" {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Key}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Marshal returns the indented document for root.
func Marshal(root *Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes root fully before touching path, so a failed encode
// leaves any existing file intact.
func WriteFile(path string, root *Element) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Decode reads a document from r. Character data and comments are dropped;
// the scene format only carries attributes and nesting.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: decode: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := New(t.Name.Local)
			for _, a := range t.Attr {
				el.Set(a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmltree: decode: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func Unmarshal(data []byte) (*Element, error) {
	return Decode(bytes.NewReader(data))
}
