package config

import (
	"errors"
	"testing"
)

func TestParseSpring(t *testing.T) {
	spec, err := ParseSpring("pB=1 0 0; k=50;d=5;body2=anchor;pB2=0 1 0;pW=0 5 0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := SpringSpec{PositionB: "1 0 0", K: "50", D: "5", Body2: "anchor", PositionB2: "0 1 0", PositionW: "0 5 0"}
	if spec != want {
		t.Errorf("got %+v, want %+v", spec, want)
	}
}

func TestParseSpringDefaults(t *testing.T) {
	spec, err := ParseSpring("")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	s := spec.Spring()
	if s.PositionB != "0 0 0" || s.K != "100" || s.D != "10" {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestParseSpringErrors(t *testing.T) {
	for _, in := range []string{"k50", "stiffness=5"} {
		if _, err := ParseSpring(in); !errors.Is(err, ErrSpringField) {
			t.Errorf("ParseSpring(%q) = %v, want ErrSpringField", in, err)
		}
	}
}
