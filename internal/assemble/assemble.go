// Package assemble turns scene recipes into XML documents.
package assemble

import (
	"fmt"
	"strconv"

	"github.com/san-kum/scenekit/internal/config"
	"github.com/san-kum/scenekit/internal/scene"
	"github.com/san-kum/scenekit/internal/xmltree"
)

// BodyStat summarizes one built body.
type BodyStat struct {
	Name    string
	Kind    string
	Springs int
	// Stiffness holds the parsed k of each spring. Non-numeric values are
	// skipped.
	Stiffness []float64
}

type Result struct {
	Root     *xmltree.Element
	Bodies   []BodyStat
	Warnings []string
}

// SpringCount returns the total number of springs across all bodies.
func (r *Result) SpringCount() int {
	n := 0
	for _, b := range r.Bodies {
		n += b.Springs
	}
	return n
}

// Build validates r and creates every body through f. A nil f uses
// scene.General.
func Build(r *config.Recipe, f scene.ElementFactory) (*Result, error) {
	warnings, err := r.Validate()
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = scene.General{}
	}

	root := scene.NewDocument(r.Document.Scene())
	res := &Result{Root: root, Warnings: warnings}

	for _, spec := range r.Bodies {
		stat, err := buildBody(root, f, spec)
		if err != nil {
			return nil, fmt.Errorf("build %s %s: %w", spec.Kind, spec.Name, err)
		}
		res.Bodies = append(res.Bodies, stat)
	}
	return res, nil
}

func buildBody(root *xmltree.Element, f scene.ElementFactory, spec config.BodySpec) (BodyStat, error) {
	stat := BodyStat{Name: spec.Name, Kind: spec.Kind}

	var body *scene.Body
	switch spec.Kind {
	case "mesh":
		m, err := scene.NewMeshBody(root, f, spec.Obj, spec.Mesh())
		if err != nil {
			return stat, err
		}
		body = &m.Body
	case "box":
		b, err := scene.NewBox(root, f, orDefault(spec.Dim, scene.DefaultBoxDim), spec.Mesh())
		if err != nil {
			return stat, err
		}
		body = &b.Body
	case "sphere":
		s, err := scene.NewSphere(root, f, orDefault(spec.Radius, scene.DefaultSphereRadius), spec.Mesh())
		if err != nil {
			return stat, err
		}
		body = &s.Body
	case "plane":
		_, err := scene.NewPlane(root, spec.Name,
			orDefault(spec.Position, scene.DefaultPlanePoint),
			orDefault(spec.Normal, scene.DefaultPlaneNormal))
		return stat, err
	default:
		return stat, fmt.Errorf("%w: %q", config.ErrUnknownKind, spec.Kind)
	}

	for _, s := range spec.Springs {
		cfg := s.Spring()
		body.AddSpring(cfg)
		stat.Springs++
		if k, err := strconv.ParseFloat(cfg.K, 64); err == nil {
			stat.Stiffness = append(stat.Stiffness, k)
		}
	}
	return stat, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
