package sys

/*
#include "bridge.h"
*/
import "C"

// Post-process step flags, combined with bitwise OR. They mirror the
// native aiProcess_* values so a combined mask passes straight through.
const (
	ProcessCalcTangentSpace         = uint32(C.aiProcess_CalcTangentSpace)
	ProcessJoinIdenticalVertices    = uint32(C.aiProcess_JoinIdenticalVertices)
	ProcessMakeLeftHanded           = uint32(C.aiProcess_MakeLeftHanded)
	ProcessTriangulate              = uint32(C.aiProcess_Triangulate)
	ProcessRemoveComponent          = uint32(C.aiProcess_RemoveComponent)
	ProcessGenNormals               = uint32(C.aiProcess_GenNormals)
	ProcessGenSmoothNormals         = uint32(C.aiProcess_GenSmoothNormals)
	ProcessSplitLargeMeshes         = uint32(C.aiProcess_SplitLargeMeshes)
	ProcessPreTransformVertices     = uint32(C.aiProcess_PreTransformVertices)
	ProcessLimitBoneWeights         = uint32(C.aiProcess_LimitBoneWeights)
	ProcessValidateDataStructure    = uint32(C.aiProcess_ValidateDataStructure)
	ProcessImproveCacheLocality     = uint32(C.aiProcess_ImproveCacheLocality)
	ProcessRemoveRedundantMaterials = uint32(C.aiProcess_RemoveRedundantMaterials)
	ProcessFixInfacingNormals       = uint32(C.aiProcess_FixInfacingNormals)
	ProcessSortByPType              = uint32(C.aiProcess_SortByPType)
	ProcessFindDegenerates          = uint32(C.aiProcess_FindDegenerates)
	ProcessFindInvalidData          = uint32(C.aiProcess_FindInvalidData)
	ProcessGenUVCoords              = uint32(C.aiProcess_GenUVCoords)
	ProcessTransformUVCoords        = uint32(C.aiProcess_TransformUVCoords)
	ProcessFindInstances            = uint32(C.aiProcess_FindInstances)
	ProcessOptimizeMeshes           = uint32(C.aiProcess_OptimizeMeshes)
	ProcessOptimizeGraph            = uint32(C.aiProcess_OptimizeGraph)
	ProcessFlipUVs                  = uint32(C.aiProcess_FlipUVs)
	ProcessFlipWindingOrder         = uint32(C.aiProcess_FlipWindingOrder)
	ProcessSplitByBoneCount         = uint32(C.aiProcess_SplitByBoneCount)
	ProcessDebone                   = uint32(C.aiProcess_Debone)
	ProcessGlobalScale              = uint32(C.aiProcess_GlobalScale)
	ProcessEmbedTextures            = uint32(C.aiProcess_EmbedTextures)
	ProcessForceGenNormals          = uint32(C.aiProcess_ForceGenNormals)
	ProcessDropNormals              = uint32(C.aiProcess_DropNormals)
	ProcessGenBoundingBoxes         = uint32(C.aiProcess_GenBoundingBoxes)

	ProcessConvertToLeftHanded = ProcessMakeLeftHanded | ProcessFlipUVs | ProcessFlipWindingOrder
)
