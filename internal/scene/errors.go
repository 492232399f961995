package scene

import "errors"

var (
	// ErrNilRoot indicates a body was requested without a parent element.
	ErrNilRoot = errors.New("scene: nil root element")

	// ErrEmptyKind indicates the factory was asked for a body with no type tag.
	ErrEmptyKind = errors.New("scene: empty body kind")
)
