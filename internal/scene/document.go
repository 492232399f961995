package scene

import (
	"strconv"

	"github.com/san-kum/scenekit/internal/xmltree"
)

const (
	DefaultGravity  = "0 -9.8 0"
	DefaultTimestep = "0.01"
)

// DocumentConfig holds scene wide simulation settings written on the root.
type DocumentConfig struct {
	Gravity  string
	Dt       string
	Merging  bool
	Sleeping bool
}

func DefaultDocumentConfig() DocumentConfig {
	return DocumentConfig{
		Gravity: DefaultGravity,
		Dt:      DefaultTimestep,
	}
}

// NewDocument creates the root element bodies are attached to.
func NewDocument(cfg DocumentConfig) *xmltree.Element {
	root := xmltree.New("root")
	setNonEmpty(root, "gravity", cfg.Gravity)
	setNonEmpty(root, "dt", cfg.Dt)
	root.Set("merging", strconv.FormatBool(cfg.Merging))
	root.Set("sleeping", strconv.FormatBool(cfg.Sleeping))
	return root
}
