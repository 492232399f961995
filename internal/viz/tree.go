// Package viz renders scene documents for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/scenekit/internal/xmltree"
)

// RenderTree draws root as an indented outline. Attributes are shown inline
// unless brief is set, in which case only name is kept.
func RenderTree(root *xmltree.Element, brief bool) string {
	var sb strings.Builder
	root.Walk(func(el *xmltree.Element, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		if depth > 0 {
			sb.WriteString(Subtle.Render("└ "))
		}
		sb.WriteString(tagStyle(el.Tag).Render(el.Tag))
		for _, a := range el.Attrs {
			if brief && a.Key != "name" {
				continue
			}
			sb.WriteString(" ")
			sb.WriteString(AttrKey.Render(a.Key + "="))
			sb.WriteString(AttrValue.Render(fmt.Sprintf("%q", a.Value)))
		}
		sb.WriteString("\n")
	})
	return sb.String()
}

// Summary counts elements by tag.
type Summary struct {
	Bodies  int
	Springs int
	Planes  int
	Paired  int
	World   int
}

func Summarize(root *xmltree.Element) Summary {
	var s Summary
	root.Walk(func(el *xmltree.Element, depth int) {
		switch {
		case depth == 0:
		case el.Tag == "spring":
			s.Springs++
			if el.Has("body2") {
				s.Paired++
			}
			if el.Has("pW") {
				s.World++
			}
		case el.Tag == "plane":
			s.Planes++
		case depth == 1:
			s.Bodies++
		}
	})
	return s
}

// RenderSummary draws the counts in a bordered panel.
func RenderSummary(title string, s Summary) string {
	lines := []string{
		Title.Render(title),
		fmt.Sprintf("%s %d", AttrKey.Render("bodies "), s.Bodies),
		fmt.Sprintf("%s %d", AttrKey.Render("planes "), s.Planes),
		fmt.Sprintf("%s %d (%d paired, %d world)", AttrKey.Render("springs"), s.Springs, s.Paired, s.World),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}
