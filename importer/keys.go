package importer

// Common native config property names, usable with the Set*Property
// setters. The full namespace is in the library's config.h; any name
// from it may be passed directly.
const (
	KeyPPGlobalScale       = "GLOBAL_SCALE_FACTOR"
	KeyPPSortByPTypeRemove = "PP_SBP_REMOVE"
	KeyPPSLMVertexLimit    = "PP_SLM_VERTEX_LIMIT"
	KeyPPSLMTriangleLimit  = "PP_SLM_TRIANGLE_LIMIT"
	KeyPPLBWMaxWeights     = "PP_LBW_MAX_WEIGHTS"
	KeyPPRVCFlags          = "PP_RVC_FLAGS"
	KeyPPFDRemove          = "PP_FD_REMOVE"
	KeyPPOGExclusions      = "PP_OG_EXCLUDE_LIST"
	KeyPPPTVKeepHierarchy  = "PP_PTV_KEEP_HIERARCHY"
	KeyPPPTVRootTransform  = "PP_PTV_ROOT_TRANSFORMATION"
	KeyPPGSNMaxAngle       = "PP_GSN_MAX_SMOOTHING_ANGLE"
	KeyPPCTMaxAngle        = "PP_CT_MAX_SMOOTHING_ANGLE"
	KeyFavourSpeed         = "FAVOUR_SPEED"
	KeyImportNoSkeleton    = "IMPORT_NO_SKELETON_MESHES"
	KeyFBXReadAllMaterials = "IMPORT_FBX_READ_ALL_MATERIALS"
	KeyFBXPreservePivots   = "IMPORT_FBX_PRESERVE_PIVOTS"
	KeyColladaIgnoreUpDir  = "IMPORT_COLLADA_IGNORE_UP_DIRECTION"
	KeyOBJOptimizeMeshes   = "IMPORT_OBJ_OPTIMIZE_MESHES"
)
