package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSpringField = errors.New("config: bad spring field")

// ParseSpring reads the command line form of a spring,
// "pB=0 0 0;k=50;d=5;body2=anchor;pB2=0 1 0;pW=0 5 0". Every field is
// optional and unset fields take the scene defaults when built.
func ParseSpring(s string) (SpringSpec, error) {
	var spec SpringSpec
	for _, field := range strings.Split(s, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return spec, fmt.Errorf("%w: %q has no '='", ErrSpringField, field)
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "pB":
			spec.PositionB = value
		case "k":
			spec.K = value
		case "d":
			spec.D = value
		case "body2":
			spec.Body2 = value
		case "pB2":
			spec.PositionB2 = value
		case "pW":
			spec.PositionW = value
		default:
			return spec, fmt.Errorf("%w: unknown key %q", ErrSpringField, key)
		}
	}
	return spec, nil
}
