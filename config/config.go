// Package config loads the viewer's YAML configuration: listen
// address, the default post-process steps applied to every import and
// optional importer property presets.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Latias94/asset-importer/sys"
)

type Config struct {
	Listen      string           `yaml:"listen"`
	PostProcess []string         `yaml:"post_process"`
	Properties  []PropertyPreset `yaml:"properties"`
}

// PropertyPreset is one importer property in config form. Kind is one
// of "int", "float", "string", "bool".
type PropertyPreset struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	Value yaml.Node `yaml:"value"`
}

func Default() *Config {
	return &Config{
		Listen:      ":8000",
		PostProcess: []string{"Triangulate", "GenSmoothNormals", "JoinIdenticalVertices"},
	}
}

// Load reads path, falling back to Default when the file does not
// exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if _, err := cfg.Flags(); err != nil {
		return nil, err
	}
	if _, err := cfg.Props(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var flagsByName = map[string]uint32{
	"CalcTangentSpace":         sys.ProcessCalcTangentSpace,
	"JoinIdenticalVertices":    sys.ProcessJoinIdenticalVertices,
	"MakeLeftHanded":           sys.ProcessMakeLeftHanded,
	"Triangulate":              sys.ProcessTriangulate,
	"RemoveComponent":          sys.ProcessRemoveComponent,
	"GenNormals":               sys.ProcessGenNormals,
	"GenSmoothNormals":         sys.ProcessGenSmoothNormals,
	"SplitLargeMeshes":         sys.ProcessSplitLargeMeshes,
	"PreTransformVertices":     sys.ProcessPreTransformVertices,
	"LimitBoneWeights":         sys.ProcessLimitBoneWeights,
	"ValidateDataStructure":    sys.ProcessValidateDataStructure,
	"ImproveCacheLocality":     sys.ProcessImproveCacheLocality,
	"RemoveRedundantMaterials": sys.ProcessRemoveRedundantMaterials,
	"FixInfacingNormals":       sys.ProcessFixInfacingNormals,
	"SortByPType":              sys.ProcessSortByPType,
	"FindDegenerates":          sys.ProcessFindDegenerates,
	"FindInvalidData":          sys.ProcessFindInvalidData,
	"GenUVCoords":              sys.ProcessGenUVCoords,
	"TransformUVCoords":        sys.ProcessTransformUVCoords,
	"FindInstances":            sys.ProcessFindInstances,
	"OptimizeMeshes":           sys.ProcessOptimizeMeshes,
	"OptimizeGraph":            sys.ProcessOptimizeGraph,
	"FlipUVs":                  sys.ProcessFlipUVs,
	"FlipWindingOrder":         sys.ProcessFlipWindingOrder,
	"SplitByBoneCount":         sys.ProcessSplitByBoneCount,
	"Debone":                   sys.ProcessDebone,
	"GlobalScale":              sys.ProcessGlobalScale,
	"EmbedTextures":            sys.ProcessEmbedTextures,
	"ForceGenNormals":          sys.ProcessForceGenNormals,
	"DropNormals":              sys.ProcessDropNormals,
	"GenBoundingBoxes":         sys.ProcessGenBoundingBoxes,
	"ConvertToLeftHanded":      sys.ProcessConvertToLeftHanded,
}

// Flags resolves the configured post-process step names to a flag mask.
func (c *Config) Flags() (uint32, error) {
	var flags uint32
	for _, name := range c.PostProcess {
		f, ok := flagsByName[name]
		if !ok {
			return 0, errors.Errorf("unknown post-process step %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// Props converts the configured presets to importer properties.
func (c *Config) Props() ([]sys.Property, error) {
	props := make([]sys.Property, 0, len(c.Properties))
	for _, preset := range c.Properties {
		if preset.Name == "" {
			return nil, errors.New("property preset without a name")
		}
		p, err := preset.property()
		if err != nil {
			return nil, errors.Wrapf(err, "property %q", preset.Name)
		}
		props = append(props, p)
	}
	return props, nil
}

func (p *PropertyPreset) property() (sys.Property, error) {
	switch p.Kind {
	case "int":
		var v int32
		if err := p.Value.Decode(&v); err != nil {
			return sys.Property{}, err
		}
		return sys.IntProperty(p.Name, v), nil
	case "float":
		var v float32
		if err := p.Value.Decode(&v); err != nil {
			return sys.Property{}, err
		}
		return sys.FloatProperty(p.Name, v), nil
	case "string":
		var v string
		if err := p.Value.Decode(&v); err != nil {
			return sys.Property{}, err
		}
		return sys.StringProperty(p.Name, v), nil
	case "bool":
		var v bool
		if err := p.Value.Decode(&v); err != nil {
			return sys.Property{}, err
		}
		return sys.BoolProperty(p.Name, v), nil
	default:
		return sys.Property{}, errors.Errorf("unknown property kind %q", p.Kind)
	}
}
