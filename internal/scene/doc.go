// Package scene builds rigid body elements for physics scene documents.
//
// Bodies are created through an [ElementFactory]; [General] is the default
// and writes every parameter as an attribute on an element tagged with the
// body kind:
//
//   - [MeshBody]: a body loaded from a model file (tag "mesh")
//   - [BoxBody], [SphereBody]: primitive bodies
//   - [NewPlane]: a static collision plane
//
// Any body accepts springs through AddSpring, each appended as a "spring"
// child.
//
// # Example
//
//	root := scene.NewDocument(scene.DefaultDocumentConfig())
//	cfg := scene.DefaultMeshConfig()
//	cfg.Name = "ball"
//	ball, _ := scene.NewMeshBody(root, nil, "data/ball.obj", cfg)
//	ball.AddSpring(scene.DefaultSpringConfig())
//
// # Thread Safety
//
// Bodies and the elements they return are NOT thread-safe. Callers building
// one document from several goroutines must serialize access themselves.
package scene
