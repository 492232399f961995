package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/scenekit/internal/scene"
	"github.com/san-kum/scenekit/internal/xmltree"
)

var _ = Describe("primitive bodies", func() {
	var root *xmltree.Element

	BeforeEach(func() {
		root = scene.NewDocument(scene.DefaultDocumentConfig())
	})

	It("writes the scene settings on the root", func() {
		Expect(root.Tag).To(Equal("root"))
		Expect(attr(root, "gravity")).To(Equal(scene.DefaultGravity))
		Expect(attr(root, "dt")).To(Equal(scene.DefaultTimestep))
		Expect(attr(root, "merging")).To(Equal("false"))
	})

	It("builds a box with its dimensions and no obj", func() {
		cfg := scene.DefaultMeshConfig()
		cfg.Name = "crate"
		box, err := scene.NewBox(root, nil, "2 1 1", cfg)
		Expect(err).NotTo(HaveOccurred())

		el := box.Get()
		Expect(el.Tag).To(Equal("box"))
		Expect(attr(el, "dim")).To(Equal("2 1 1"))
		Expect(el.Has("obj")).To(BeFalse())

		box.AddSpring(scene.DefaultSpringConfig())
		Expect(el.FindAll("spring")).To(HaveLen(1))
	})

	It("builds a sphere", func() {
		sphere, err := scene.NewSphere(root, nil, "0.5", scene.DefaultMeshConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(sphere.Get().Tag).To(Equal("sphere"))
		Expect(attr(sphere.Get(), "radius")).To(Equal("0.5"))
	})

	It("adds a static plane", func() {
		plane, err := scene.NewPlane(root, "floor", scene.DefaultPlanePoint, scene.DefaultPlaneNormal)
		Expect(err).NotTo(HaveOccurred())
		Expect(root.Find("plane")).To(BeIdenticalTo(plane))
		Expect(attr(plane, "n")).To(Equal("0 1 0"))
	})

	It("rejects an empty kind in the general factory", func() {
		_, err := scene.General{}.NewBody(root, "", scene.BodyParams{})
		Expect(err).To(MatchError(scene.ErrEmptyKind))
	})
})
