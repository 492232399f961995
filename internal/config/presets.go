package config

import (
	"sort"

	"github.com/san-kum/scenekit/internal/scene"
)

var Presets = map[string]*Recipe{
	"single": {
		Name:     "single",
		Document: DocumentConfig{Gravity: scene.DefaultGravity, Dt: scene.DefaultTimestep},
		Bodies: []BodySpec{
			{Kind: "plane", Name: "floor"},
			{Kind: "mesh", Name: "bunny", Obj: "data/bunny.obj", Position: "0 2 0"},
		},
	},
	"pendulum": {
		Name:     "pendulum",
		Document: DocumentConfig{Gravity: scene.DefaultGravity, Dt: "0.005"},
		Bodies: []BodySpec{
			{
				Kind: "mesh", Name: "bob", Obj: "data/sphere.obj", Position: "2 5 0",
				Springs: []SpringSpec{{PositionB: "0 0 0", K: "500", D: "5", PositionW: "0 5 0"}},
			},
		},
	},
	"chain": {
		Name:     "chain",
		Document: DocumentConfig{Gravity: scene.DefaultGravity, Dt: "0.005"},
		Bodies: []BodySpec{
			{Kind: "box", Name: "link0", Dim: "0.5 0.5 0.5", Position: "0 6 0", Pinned: true},
			{
				Kind: "mesh", Name: "link1", Obj: "data/link.obj", Position: "0 5 0",
				Springs: []SpringSpec{{K: "300", D: "3", Body2: "link0", PositionB2: "0 0 0"}},
			},
			{
				Kind: "mesh", Name: "link2", Obj: "data/link.obj", Position: "0 4 0",
				Springs: []SpringSpec{{K: "250", D: "3", Body2: "link1", PositionB2: "0 0 0"}},
			},
			{
				Kind: "mesh", Name: "link3", Obj: "data/link.obj", Position: "0 3 0",
				Springs: []SpringSpec{{K: "200", D: "3", Body2: "link2", PositionB2: "0 0 0"}},
			},
		},
	},
	"anchored": {
		Name:     "anchored",
		Document: DocumentConfig{Gravity: scene.DefaultGravity, Dt: scene.DefaultTimestep, Merging: true, Sleeping: true},
		Bodies: []BodySpec{
			{Kind: "plane", Name: "floor"},
			{
				Kind: "mesh", Name: "torus", Obj: "data/torus.obj", Position: "0 3 0", Magnetic: true,
				Springs: []SpringSpec{
					{PositionB: "1 0 0", K: "80", D: "8", PositionW: "1 6 0"},
					{PositionB: "-1 0 0", K: "80", D: "8", PositionW: "-1 6 0"},
				},
			},
			{Kind: "sphere", Name: "pebble", Radius: "0.25", Position: "0 1 0", Restitution: "0.4"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Recipe {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	r := *p
	r.Bodies = make([]BodySpec, len(p.Bodies))
	for i, b := range p.Bodies {
		r.Bodies[i] = b
		r.Bodies[i].Springs = append([]SpringSpec(nil), b.Springs...)
	}
	return &r
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
