package scene_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/scenekit/internal/scene"
	"github.com/san-kum/scenekit/internal/xmltree"
)

func attrKeys(e *xmltree.Element) []string {
	keys := make([]string, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		keys = append(keys, a.Key)
	}
	return keys
}

func attr(e *xmltree.Element, key string) string {
	v, _ := e.Get(key)
	return v
}

var _ = Describe("MeshBody", func() {
	var root *xmltree.Element

	BeforeEach(func() {
		root = scene.NewDocument(scene.DefaultDocumentConfig())
	})

	Describe("construction", func() {
		It("attaches a mesh element under the root", func() {
			mesh, err := scene.NewMeshBody(root, nil, "data/torus.obj", scene.DefaultMeshConfig())
			Expect(err).NotTo(HaveOccurred())

			body := mesh.Get()
			Expect(body).NotTo(BeNil())
			Expect(body.Tag).To(Equal("mesh"))
			Expect(root.Children).To(ConsistOf(body))
		})

		It("writes the default parameters", func() {
			mesh, err := scene.NewMeshBody(root, scene.General{}, "data/torus.obj", scene.DefaultMeshConfig())
			Expect(err).NotTo(HaveOccurred())

			body := mesh.Get()
			Expect(attr(body, "name")).To(Equal("mesh"))
			Expect(attr(body, "obj")).To(Equal("data/torus.obj"))
			Expect(attr(body, "x")).To(Equal("0 0 0"))
			Expect(attr(body, "R")).To(Equal("0 -1 0 0"))
			Expect(attr(body, "v")).To(Equal("0 0 0"))
			Expect(attr(body, "omega")).To(Equal("0 0 0"))
			Expect(attr(body, "scale")).To(Equal("1"))
			Expect(attr(body, "density")).To(Equal("1"))
			Expect(attr(body, "pinned")).To(Equal("false"))
			Expect(attr(body, "magnetic")).To(Equal("false"))
			for _, key := range []string{"st", "restitution", "friction", "color"} {
				Expect(body.Has(key)).To(BeFalse(), key)
			}
		})

		It("passes parameters to the factory unchanged", func() {
			var gotKind string
			var got scene.BodyParams
			f := scene.FactoryFunc(func(r *xmltree.Element, kind string, p scene.BodyParams) (*xmltree.Element, error) {
				gotKind, got = kind, p
				return xmltree.SubElement(r, kind), nil
			})

			cfg := scene.DefaultMeshConfig()
			cfg.Name = "ball"
			cfg.Position = "1 2 3"
			cfg.ST = "0.5 0.5"
			cfg.Pinned = true
			cfg.Restitution = "0.2"
			cfg.Friction = "0.8"
			cfg.Color = "1 0 0"

			_, err := scene.NewMeshBody(root, f, "ball.obj", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotKind).To(Equal("mesh"))
			Expect(got.Name).To(Equal("ball"))
			Expect(got.Position).To(Equal("1 2 3"))
			Expect(got.Obj).To(Equal("ball.obj"))
			Expect(got.ST).To(Equal("0.5 0.5"))
			Expect(got.Pinned).To(BeTrue())
			Expect(got.Restitution).To(Equal("0.2"))
			Expect(got.Friction).To(Equal("0.8"))
			Expect(got.Color).To(Equal("1 0 0"))
		})

		It("returns factory errors unmodified", func() {
			boom := errors.New("boom")
			f := scene.FactoryFunc(func(*xmltree.Element, string, scene.BodyParams) (*xmltree.Element, error) {
				return nil, boom
			})

			mesh, err := scene.NewMeshBody(root, f, "x.obj", scene.DefaultMeshConfig())
			Expect(mesh).To(BeNil())
			Expect(err).To(BeIdenticalTo(boom))
		})

		It("fails on a nil root", func() {
			_, err := scene.NewMeshBody(nil, nil, "x.obj", scene.DefaultMeshConfig())
			Expect(err).To(MatchError(scene.ErrNilRoot))
		})
	})

	Describe("AddSpring", func() {
		var mesh *scene.MeshBody

		BeforeEach(func() {
			cfg := scene.DefaultMeshConfig()
			cfg.Name = "ball"
			cfg.Position = "1 2 3"
			var err error
			mesh, err = scene.NewMeshBody(root, nil, "ball.obj", cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("writes only pB, k and d for a plain spring", func() {
			mesh.AddSpring(scene.SpringConfig{PositionB: "0 0 0", K: "50", D: "5"})

			springs := mesh.Get().FindAll("spring")
			Expect(springs).To(HaveLen(1))
			Expect(attrKeys(springs[0])).To(Equal([]string{"pB", "k", "d"}))
			Expect(attr(springs[0], "pB")).To(Equal("0 0 0"))
			Expect(attr(springs[0], "k")).To(Equal("50"))
			Expect(attr(springs[0], "d")).To(Equal("5"))
		})

		It("uses the documented defaults", func() {
			mesh.AddSpring(scene.DefaultSpringConfig())

			s := mesh.Get().Find("spring")
			Expect(attr(s, "pB")).To(Equal("0 0 0"))
			Expect(attr(s, "k")).To(Equal("100"))
			Expect(attr(s, "d")).To(Equal("10"))
		})

		It("links a second body when both halves are given", func() {
			s := scene.DefaultSpringConfig()
			s.Body2 = "anchor"
			s.PositionB2 = "0 1 0"
			mesh.AddSpring(s)

			el := mesh.Get().Find("spring")
			Expect(attr(el, "body2")).To(Equal("anchor"))
			Expect(attr(el, "pB2")).To(Equal("0 1 0"))
		})

		DescribeTable("drops a half-specified pairing",
			func(body2, pB2 string) {
				s := scene.DefaultSpringConfig()
				s.Body2 = body2
				s.PositionB2 = pB2
				Expect(s.PartialPair()).To(BeTrue())
				mesh.AddSpring(s)

				el := mesh.Get().Find("spring")
				Expect(el.Has("body2")).To(BeFalse())
				Expect(el.Has("pB2")).To(BeFalse())
			},
			Entry("body only", "anchor", ""),
			Entry("point only", "", "0 1 0"),
		)

		It("writes pW whenever a world anchor is given", func() {
			s := scene.DefaultSpringConfig()
			s.PositionW = "0 5 0"
			s.Body2 = "anchor"
			mesh.AddSpring(s)

			el := mesh.Get().Find("spring")
			Expect(attr(el, "pW")).To(Equal("0 5 0"))
			Expect(el.Has("body2")).To(BeFalse())
		})

		It("appends a distinct child per call", func() {
			mesh.AddSpring(scene.SpringConfig{PositionB: "1 0 0", K: "10", D: "1"})
			mesh.AddSpring(scene.SpringConfig{PositionB: "-1 0 0", K: "20", D: "2", PositionW: "0 3 0"})

			springs := mesh.Get().FindAll("spring")
			Expect(springs).To(HaveLen(2))
			Expect(springs[0]).NotTo(BeIdenticalTo(springs[1]))
			Expect(attr(springs[0], "k")).To(Equal("10"))
			Expect(springs[0].Has("pW")).To(BeFalse())
			Expect(attr(springs[1], "k")).To(Equal("20"))
			Expect(attr(springs[1], "pW")).To(Equal("0 3 0"))
		})
	})
})
