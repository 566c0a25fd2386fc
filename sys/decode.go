package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/Latias94/asset-importer/scene"
)

// Decode copies the native scene graph into the pure-Go scene model.
// The result shares no memory with the handle and stays usable after
// Free.
func (s *Scene) Decode() (*scene.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil {
		return nil, errors.New("scene already freed")
	}

	cs := s.c
	out := &scene.Scene{
		Name:     goAiString(&cs.mName),
		Flags:    uint32(cs.mFlags),
		Metadata: decodeMetadata(cs.mMetaData),
	}

	if cs.mRootNode != nil {
		out.RootNode = decodeNode(cs.mRootNode, nil)
	}

	for _, cm := range unsafe.Slice(cs.mMeshes, int(cs.mNumMeshes)) {
		out.Meshes = append(out.Meshes, decodeMesh(cm))
	}
	for _, cm := range unsafe.Slice(cs.mMaterials, int(cs.mNumMaterials)) {
		out.Materials = append(out.Materials, decodeMaterial(cm))
	}
	for _, ca := range unsafe.Slice(cs.mAnimations, int(cs.mNumAnimations)) {
		out.Animations = append(out.Animations, decodeAnimation(ca))
	}
	for _, ct := range unsafe.Slice(cs.mTextures, int(cs.mNumTextures)) {
		out.Textures = append(out.Textures, decodeTexture(ct))
	}
	for _, cl := range unsafe.Slice(cs.mLights, int(cs.mNumLights)) {
		out.Lights = append(out.Lights, decodeLight(cl))
	}
	for _, cc := range unsafe.Slice(cs.mCameras, int(cs.mNumCameras)) {
		out.Cameras = append(out.Cameras, decodeCamera(cc))
	}

	return out, nil
}

func decodeNode(cn *C.struct_aiNode, parent *scene.Node) *scene.Node {
	n := &scene.Node{
		Name:      goAiString(&cn.mName),
		Transform: goMat4(&cn.mTransformation),
		Parent:    parent,
		Metadata:  decodeMetadata(cn.mMetaData),
	}
	if cn.mNumMeshes > 0 {
		n.MeshIndices = make([]uint32, int(cn.mNumMeshes))
		for i, idx := range unsafe.Slice(cn.mMeshes, int(cn.mNumMeshes)) {
			n.MeshIndices[i] = uint32(idx)
		}
	}
	for _, cc := range unsafe.Slice(cn.mChildren, int(cn.mNumChildren)) {
		n.Children = append(n.Children, decodeNode(cc, n))
	}
	return n
}

func decodeMesh(cm *C.struct_aiMesh) *scene.Mesh {
	m := &scene.Mesh{
		Name:           goAiString(&cm.mName),
		MaterialIndex:  uint32(cm.mMaterialIndex),
		PrimitiveTypes: uint32(cm.mPrimitiveTypes),
		AABB: scene.AABB{
			Min: goVec3(cm.mAABB.mMin),
			Max: goVec3(cm.mAABB.mMax),
		},
	}

	nv := int(cm.mNumVertices)
	m.Positions = goVec3Slice(cm.mVertices, nv)
	m.Normals = goVec3Slice(cm.mNormals, nv)
	m.Tangents = goVec3Slice(cm.mTangents, nv)
	m.Bitangents = goVec3Slice(cm.mBitangents, nv)

	for i := 0; i < scene.MaxTextureCoords; i++ {
		m.TexCoords[i] = goVec3Slice(cm.mTextureCoords[i], nv)
		m.UVComponents[i] = uint32(cm.mNumUVComponents[i])
	}
	for i := 0; i < scene.MaxColorSets; i++ {
		m.Colors[i] = goColorSlice(cm.mColors[i], nv)
	}

	for _, cf := range unsafe.Slice(cm.mFaces, int(cm.mNumFaces)) {
		face := scene.Face{Indices: make([]uint32, int(cf.mNumIndices))}
		for i, idx := range unsafe.Slice(cf.mIndices, int(cf.mNumIndices)) {
			face.Indices[i] = uint32(idx)
		}
		m.Faces = append(m.Faces, face)
	}

	for _, cb := range unsafe.Slice(cm.mBones, int(cm.mNumBones)) {
		bone := &scene.Bone{
			Name:         goAiString(&cb.mName),
			OffsetMatrix: goMat4(&cb.mOffsetMatrix),
		}
		for _, cw := range unsafe.Slice(cb.mWeights, int(cb.mNumWeights)) {
			bone.Weights = append(bone.Weights, scene.VertexWeight{
				VertexID: uint32(cw.mVertexId),
				Weight:   float32(cw.mWeight),
			})
		}
		m.Bones = append(m.Bones, bone)
	}

	return m
}

func decodeMaterial(cm *C.struct_aiMaterial) *scene.Material {
	m := &scene.Material{}
	for _, cp := range unsafe.Slice(cm.mProperties, int(cm.mNumProperties)) {
		prop := scene.MaterialProperty{
			Key:      goAiString(&cp.mKey),
			Semantic: uint32(cp.mSemantic),
			Index:    uint32(cp.mIndex),
			Type:     uint32(cp.mType),
		}
		if cp.mData != nil && cp.mDataLength > 0 {
			prop.Raw = C.GoBytes(unsafe.Pointer(cp.mData), C.int(cp.mDataLength))
		}
		m.Properties = append(m.Properties, prop)
	}
	return m
}

func decodeAnimation(ca *C.struct_aiAnimation) *scene.Animation {
	a := &scene.Animation{
		Name:           goAiString(&ca.mName),
		Duration:       float64(ca.mDuration),
		TicksPerSecond: float64(ca.mTicksPerSecond),
	}
	for _, cc := range unsafe.Slice(ca.mChannels, int(ca.mNumChannels)) {
		ch := &scene.NodeAnim{NodeName: goAiString(&cc.mNodeName)}
		for _, k := range unsafe.Slice(cc.mPositionKeys, int(cc.mNumPositionKeys)) {
			ch.PositionKeys = append(ch.PositionKeys, scene.VectorKey{
				Time:  float64(k.mTime),
				Value: goVec3(k.mValue),
			})
		}
		for _, k := range unsafe.Slice(cc.mRotationKeys, int(cc.mNumRotationKeys)) {
			ch.RotationKeys = append(ch.RotationKeys, scene.QuatKey{
				Time: float64(k.mTime),
				Value: mgl32.Quat{
					W: float32(k.mValue.w),
					V: mgl32.Vec3{float32(k.mValue.x), float32(k.mValue.y), float32(k.mValue.z)},
				},
			})
		}
		for _, k := range unsafe.Slice(cc.mScalingKeys, int(cc.mNumScalingKeys)) {
			ch.ScalingKeys = append(ch.ScalingKeys, scene.VectorKey{
				Time:  float64(k.mTime),
				Value: goVec3(k.mValue),
			})
		}
		a.Channels = append(a.Channels, ch)
	}
	return a
}

func decodeTexture(ct *C.struct_aiTexture) *scene.Texture {
	t := &scene.Texture{
		FormatHint: C.GoString(&ct.achFormatHint[0]),
		Width:      uint32(ct.mWidth),
		Height:     uint32(ct.mHeight),
	}
	if ct.pcData != nil {
		size := int(ct.mWidth)
		if ct.mHeight != 0 {
			// uncompressed BGRA texels
			size = int(ct.mWidth) * int(ct.mHeight) * 4
		}
		t.Data = C.GoBytes(unsafe.Pointer(ct.pcData), C.int(size))
	}
	return t
}

func decodeLight(cl *C.struct_aiLight) *scene.Light {
	return &scene.Light{
		Name:      goAiString(&cl.mName),
		Type:      int(cl.mType),
		Position:  goVec3(cl.mPosition),
		Direction: goVec3(cl.mDirection),
		Up:        goVec3(cl.mUp),

		AttenuationConstant:  float32(cl.mAttenuationConstant),
		AttenuationLinear:    float32(cl.mAttenuationLinear),
		AttenuationQuadratic: float32(cl.mAttenuationQuadratic),

		ColorDiffuse:  goColor3(cl.mColorDiffuse),
		ColorSpecular: goColor3(cl.mColorSpecular),
		ColorAmbient:  goColor3(cl.mColorAmbient),

		AngleInnerCone: float32(cl.mAngleInnerCone),
		AngleOuterCone: float32(cl.mAngleOuterCone),
	}
}

func decodeCamera(cc *C.struct_aiCamera) *scene.Camera {
	return &scene.Camera{
		Name:       goAiString(&cc.mName),
		Position:   goVec3(cc.mPosition),
		LookAt:     goVec3(cc.mLookAt),
		Up:         goVec3(cc.mUp),
		FOV:        float32(cc.mHorizontalFOV),
		ClipNear:   float32(cc.mClipPlaneNear),
		ClipFar:    float32(cc.mClipPlaneFar),
		Aspect:     float32(cc.mAspect),
		OrthoWidth: float32(cc.mOrthographicWidth),
	}
}

// Metadata value type tags (aiMetadataType).
const (
	metaBool = iota
	metaInt32
	metaUint64
	metaFloat
	metaDouble
	metaAiString
	metaVec3
)

func decodeMetadata(cm *C.struct_aiMetadata) scene.Metadata {
	if cm == nil || cm.mNumProperties == 0 {
		return nil
	}

	keys := unsafe.Slice(cm.mKeys, int(cm.mNumProperties))
	values := unsafe.Slice(cm.mValues, int(cm.mNumProperties))

	md := make(scene.Metadata, 0, int(cm.mNumProperties))
	for i := range keys {
		data := values[i].mData
		if data == nil {
			continue
		}
		var v interface{}
		switch int(values[i].mType) {
		case metaBool:
			v = bool(*(*C.bool)(data))
		case metaInt32:
			v = int32(*(*C.int32_t)(data))
		case metaUint64:
			v = uint64(*(*C.uint64_t)(data))
		case metaFloat:
			v = float32(*(*C.float)(data))
		case metaDouble:
			v = float64(*(*C.double)(data))
		case metaAiString:
			v = goAiString((*C.struct_aiString)(data))
		case metaVec3:
			v = goVec3(*(*C.struct_aiVector3D)(data))
		default:
			continue
		}
		md = append(md, scene.MetadataEntry{Key: goAiString(&keys[i]), Value: v})
	}
	return md
}

func goAiString(s *C.struct_aiString) string {
	n := int(s.length)
	if n <= 0 {
		return ""
	}
	if n > len(s.data) {
		n = len(s.data)
	}
	return C.GoStringN((*C.char)(unsafe.Pointer(&s.data[0])), C.int(n))
}

func goVec3(v C.struct_aiVector3D) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.x), float32(v.y), float32(v.z)}
}

func goVec3Slice(p *C.struct_aiVector3D, n int) []mgl32.Vec3 {
	if p == nil || n == 0 {
		return nil
	}
	out := make([]mgl32.Vec3, n)
	for i, v := range unsafe.Slice(p, n) {
		out[i] = goVec3(v)
	}
	return out
}

func goColorSlice(p *C.struct_aiColor4D, n int) []mgl32.Vec4 {
	if p == nil || n == 0 {
		return nil
	}
	out := make([]mgl32.Vec4, n)
	for i, c := range unsafe.Slice(p, n) {
		out[i] = mgl32.Vec4{float32(c.r), float32(c.g), float32(c.b), float32(c.a)}
	}
	return out
}

func goColor3(c C.struct_aiColor3D) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.r), float32(c.g), float32(c.b)}
}

func goMat4(m *C.struct_aiMatrix4x4) mgl32.Mat4 {
	return scene.MatFromRowMajor([16]float32{
		float32(m.a1), float32(m.a2), float32(m.a3), float32(m.a4),
		float32(m.b1), float32(m.b2), float32(m.b3), float32(m.b4),
		float32(m.c1), float32(m.c2), float32(m.c3), float32(m.c4),
		float32(m.d1), float32(m.d2), float32(m.d3), float32(m.d4),
	})
}
