// Package gltfconv converts a decoded scene into a glTF 2.0 document.
// Only the viewer-relevant subset is mapped: node hierarchy, triangle
// meshes with UV/color layers, base material properties and embedded
// textures. Skinning and animation channels are not converted.
package gltfconv

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Latias94/asset-importer/scene"
)

type converter struct {
	doc *gltf.Document
	sc  *scene.Scene

	meshIndices []int32 // scene mesh index -> doc mesh index, -1 when skipped
	textures    map[string]uint32
}

// NewDocument builds a glTF document from sc.
func NewDocument(sc *scene.Scene) (*gltf.Document, error) {
	if sc == nil || sc.RootNode == nil {
		return nil, errors.New("scene has no root node")
	}

	c := &converter{
		doc:      gltf.NewDocument(),
		sc:       sc,
		textures: make(map[string]uint32),
	}
	c.doc.Scenes[0].Name = sc.Name

	for i, mat := range sc.Materials {
		if err := c.addMaterial(i, mat); err != nil {
			return nil, errors.Wrapf(err, "material %d", i)
		}
	}
	for i, m := range sc.Meshes {
		c.meshIndices = append(c.meshIndices, c.addMesh(i, m))
	}

	root := c.addNode(sc.RootNode)
	c.doc.Scenes[0].Nodes = append(c.doc.Scenes[0].Nodes, root)

	return c.doc, nil
}

func (c *converter) addNode(n *scene.Node) uint32 {
	node := &gltf.Node{
		Name:   n.Name,
		Matrix: [16]float32(n.Transform),
	}

	index := uint32(len(c.doc.Nodes))
	c.doc.Nodes = append(c.doc.Nodes, node)

	// one glTF mesh per node mesh reference; extra references become
	// anonymous child nodes since glTF nodes hold a single mesh
	var meshes []uint32
	for _, mi := range n.MeshIndices {
		if int(mi) < len(c.meshIndices) && c.meshIndices[mi] >= 0 {
			meshes = append(meshes, uint32(c.meshIndices[mi]))
		}
	}
	if len(meshes) > 0 {
		node.Mesh = gltf.Index(meshes[0])
		for _, extra := range meshes[1:] {
			child := uint32(len(c.doc.Nodes))
			c.doc.Nodes = append(c.doc.Nodes, &gltf.Node{
				Name: fmt.Sprintf("%s_mesh%d", n.Name, extra),
				Mesh: gltf.Index(extra),
			})
			node.Children = append(node.Children, child)
		}
	}

	for _, child := range n.Children {
		node.Children = append(node.Children, c.addNode(child))
	}
	return index
}

func (c *converter) addMesh(index int, m *scene.Mesh) int32 {
	if len(m.Positions) == 0 {
		return -1
	}

	attributes := make(map[string]uint32)

	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = p
	}
	attributes["POSITION"] = modeler.WritePosition(c.doc, positions)

	if m.HasNormals() {
		normals := make([][3]float32, len(m.Normals))
		for i, n := range m.Normals {
			if n.Len() > 0.5 {
				n = n.Normalize()
			}
			normals[i] = n
		}
		attributes["NORMAL"] = modeler.WriteNormal(c.doc, normals)
	}

	layer := 0
	for i := 0; i < scene.MaxTextureCoords; i++ {
		if m.TexCoords[i] == nil {
			continue
		}
		uvs := make([][2]float32, len(m.TexCoords[i]))
		for j, uv := range m.TexCoords[i] {
			uvs[j] = [2]float32{uv[0], uv[1]}
		}
		attributes[fmt.Sprintf("TEXCOORD_%d", layer)] = modeler.WriteTextureCoord(c.doc, uvs)
		layer++
	}

	layer = 0
	for i := 0; i < scene.MaxColorSets; i++ {
		if m.Colors[i] == nil {
			continue
		}
		colors := make([][4]uint8, len(m.Colors[i]))
		for j, col := range m.Colors[i] {
			colors[j] = [4]uint8{colorByte(col[0]), colorByte(col[1]), colorByte(col[2]), colorByte(col[3])}
		}
		attributes[fmt.Sprintf("COLOR_%d", layer)] = modeler.WriteColor(c.doc, colors)
		layer++
	}

	primitive := &gltf.Primitive{Attributes: attributes}
	if indices := m.TriangleIndices(); len(indices) > 0 {
		primitive.Indices = gltf.Index(modeler.WriteIndices(c.doc, indices))
	}
	if int(m.MaterialIndex) < len(c.doc.Materials) {
		primitive.Material = gltf.Index(m.MaterialIndex)
	}

	name := m.Name
	if name == "" {
		name = fmt.Sprintf("mesh%d", index)
	}
	c.doc.Meshes = append(c.doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})
	return int32(len(c.doc.Meshes) - 1)
}

func (c *converter) addMaterial(index int, mat *scene.Material) error {
	name := mat.Name()
	if name == "" {
		name = fmt.Sprintf("material%d", index)
	}

	metallic := float32(0)
	pbr := &gltf.PBRMetallicRoughness{MetallicFactor: &metallic}
	if color, ok := mat.Color(scene.MatKeyColorDiffuse); ok {
		bc := new([4]float32)
		*bc = color
		if opacity, ok := mat.Float(scene.MatKeyOpacity); ok && opacity > 0 && opacity < 1 {
			bc[3] = opacity
		}
		pbr.BaseColorFactor = bc
	}

	gltfMaterial := &gltf.Material{
		Name:                 name,
		PBRMetallicRoughness: pbr,
	}
	if twoSided, ok := mat.Int(scene.MatKeyTwoSided); ok && twoSided != 0 {
		gltfMaterial.DoubleSided = true
	}
	if emissive, ok := mat.Color(scene.MatKeyColorEmissive); ok {
		gltfMaterial.EmissiveFactor = [3]float32{emissive[0], emissive[1], emissive[2]}
	}

	semantic := uint32(scene.TextureDiffuse)
	if mat.TextureCount(scene.TextureBaseColor) > 0 {
		semantic = scene.TextureBaseColor
	}
	if path, ok := mat.TexturePath(semantic, 0); ok {
		ti, err := c.addTexture(path)
		if err != nil {
			return err
		}
		if ti != nil {
			pbr.BaseColorTexture = &gltf.TextureInfo{Index: *ti}
		}
	}

	c.doc.Materials = append(c.doc.Materials, gltfMaterial)
	return nil
}

// addTexture maps a material texture path to a document texture,
// embedding referenced scene textures into the buffer. External file
// paths become URI images resolved by the consumer. Unsupported
// payloads are dropped, not an error.
func (c *converter) addTexture(path string) (*uint32, error) {
	if ti, ok := c.textures[path]; ok {
		return &ti, nil
	}

	var imageIndex uint32
	if tex := c.sc.ResolveEmbedded(path); tex != nil {
		name := fmt.Sprintf("texture%s", path[1:])
		data, mime, err := textureBytes(tex)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, nil
		}
		imageIndex, err = modeler.WriteImage(c.doc, name, mime, bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "embed %q", path)
		}
	} else {
		imageIndex = uint32(len(c.doc.Images))
		c.doc.Images = append(c.doc.Images, &gltf.Image{Name: path, URI: path})
	}

	samplerIndex := uint32(len(c.doc.Samplers))
	c.doc.Samplers = append(c.doc.Samplers, &gltf.Sampler{
		MinFilter: gltf.MinLinear,
		MagFilter: gltf.MagLinear,
		WrapS:     gltf.WrapRepeat,
		WrapT:     gltf.WrapRepeat,
	})

	ti := uint32(len(c.doc.Textures))
	c.doc.Textures = append(c.doc.Textures, &gltf.Texture{
		Sampler: gltf.Index(samplerIndex),
		Source:  gltf.Index(imageIndex),
	})
	c.textures[path] = ti
	return &ti, nil
}

// textureBytes yields png/jpeg container bytes for an embedded texture,
// re-encoding raw BGRA texels as png. Returns nil bytes for compressed
// formats glTF cannot reference.
func textureBytes(tex *scene.Texture) ([]byte, string, error) {
	if tex.Compressed() {
		switch tex.FormatHint {
		case "png":
			return tex.Data, "image/png", nil
		case "jpg", "jpeg":
			return tex.Data, "image/jpeg", nil
		default:
			return nil, "", nil
		}
	}

	w, h := int(tex.Width), int(tex.Height)
	if len(tex.Data) < w*h*4 {
		return nil, "", errors.Errorf("texture data truncated: %d bytes for %dx%d", len(tex.Data), w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		// stored BGRA
		img.Pix[i*4+0] = tex.Data[i*4+2]
		img.Pix[i*4+1] = tex.Data[i*4+1]
		img.Pix[i*4+2] = tex.Data[i*4+0]
		img.Pix[i*4+3] = tex.Data[i*4+3]
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", errors.Wrap(err, "encode texture png")
	}
	return buf.Bytes(), "image/png", nil
}

func colorByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// EncodeBinary writes doc as a .glb container.
func EncodeBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

// Encode writes doc as gltf JSON.
func Encode(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = false
	return encoder.Encode(doc)
}
