package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNotBuilt is returned when exporting a mesh whose geometry has no data.
var ErrNotBuilt = errors.New("geometry has not been built")

// NewGLTFDocument converts a built mesh into a glTF document with one node,
// one mesh and one material carrying the mesh color as its base color.
func NewGLTFDocument(name string, mesh *Mesh) (*gltf.Document, error) {
	positions, uvs, indices := mesh.Geometry.Buffers()
	if len(positions) == 0 || len(indices) == 0 {
		return nil, ErrNotBuilt
	}

	doc := gltf.NewDocument()

	points := make([][3]float32, len(positions)/3)
	for i := range points {
		points[i] = [3]float32{positions[i*3], positions[i*3+1], positions[i*3+2]}
	}
	attrs := gltf.PrimitiveAttributes{
		gltf.POSITION: modeler.WritePosition(doc, points),
	}

	// Only as many UV pairs as there are vertices are addressable.
	if len(uvs) >= len(points)*2 {
		coords := make([][2]float32, len(points))
		for i := range coords {
			coords[i] = [2]float32{uvs[i*2], uvs[i*2+1]}
		}
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, coords)
	}

	c := mesh.Material.GetColor()
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: name + "-material",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
		},
	})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: attrs,
			Material:   gltf.Index(len(doc.Materials) - 1),
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil
}

// ExportGLTF writes mesh to path as a binary glTF (.glb) container.
func ExportGLTF(path string, mesh *Mesh) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc, err := NewGLTFDocument(name, mesh)
	if err != nil {
		return fmt.Errorf("gltf export %q: %w", path, err)
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}
