package web

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Latias94/asset-importer/scene"
)

func TestSummarize(t *testing.T) {
	sc := &scene.Scene{
		Name: "model",
		RootNode: &scene.Node{
			Name: "root",
			Children: []*scene.Node{
				{Name: "a"},
				{Name: "b", Children: []*scene.Node{{Name: "c"}}},
			},
		},
		Meshes: []*scene.Mesh{{
			Name:          "body",
			MaterialIndex: 1,
			Positions:     []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Faces:         []scene.Face{{Indices: []uint32{0, 1, 2}}},
		}},
		Materials: []*scene.Material{{}, {}},
	}

	sum := summarize(sc)
	if sum.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", sum.Nodes)
	}
	if len(sum.Meshes) != 1 || sum.Meshes[0].Vertices != 3 || sum.Meshes[0].Material != 1 {
		t.Errorf("Meshes = %+v", sum.Meshes)
	}
	if len(sum.Materials) != 2 {
		t.Errorf("Materials = %v", sum.Materials)
	}
}
