package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/scenekit/internal/xmltree"
)

// ErrBadName indicates a build name that is not a single path segment.
var ErrBadName = errors.New("storage: build name must be a single path segment")

const (
	metadataFile = "metadata.json"
	sceneFile    = "scene.xml"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type BuildMetadata struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Bodies    int       `json:"bodies"`
	Springs   int       `json:"springs"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// ValidName reports whether name can be used as a build directory prefix.
// Names must be a single path segment.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Save writes the document and its metadata under a new build directory and
// returns the build id. ID, Name and Timestamp in meta are filled in. A
// partially written build directory is removed on failure.
func (s *Store) Save(name string, root *xmltree.Element, meta BuildMetadata) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}

	now := time.Now()
	buildID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	buildDir := filepath.Join(s.baseDir, buildID)

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return "", err
	}

	meta.ID = buildID
	meta.Name = name
	meta.Timestamp = now

	if err := writeBuild(buildDir, root, meta); err != nil {
		_ = os.RemoveAll(buildDir)
		return "", err
	}

	return buildID, nil
}

func writeBuild(buildDir string, root *xmltree.Element, meta BuildMetadata) error {
	metaFile, err := os.Create(filepath.Join(buildDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	xmlFile, err := os.Create(filepath.Join(buildDir, sceneFile))
	if err != nil {
		return err
	}
	defer xmlFile.Close()

	return xmltree.Encode(xmlFile, root, "  ")
}

func (s *Store) List() ([]BuildMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BuildMetadata{}, nil
		}
		return nil, err
	}

	builds := make([]BuildMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		builds = append(builds, *meta)
	}

	return builds, nil
}

func (s *Store) Load(buildID string) (*BuildMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, buildID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta BuildMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ScenePath returns where the XML document of buildID is stored.
func (s *Store) ScenePath(buildID string) string {
	return filepath.Join(s.baseDir, buildID, sceneFile)
}

func (s *Store) LoadScene(buildID string) (*xmltree.Element, error) {
	file, err := os.Open(s.ScenePath(buildID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return xmltree.Decode(file)
}
