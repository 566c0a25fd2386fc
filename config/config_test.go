package config

import (
	"testing"

	"github.com/Latias94/asset-importer/sys"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
listen: ":9000"
post_process: [Triangulate, FlipUVs]
properties:
  - name: PP_LBW_MAX_WEIGHTS
    kind: int
    value: 4
  - name: GLOBAL_SCALE_FACTOR
    kind: float
    value: 0.01
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q", cfg.Listen)
	}

	flags, err := cfg.Flags()
	if err != nil {
		t.Fatalf("Flags: %v", err)
	}
	if flags != sys.ProcessTriangulate|sys.ProcessFlipUVs {
		t.Errorf("Flags = %#x", flags)
	}

	props, err := cfg.Props()
	if err != nil {
		t.Fatalf("Props: %v", err)
	}
	if len(props) != 2 || props[0].Int != 4 || props[1].Float != 0.01 {
		t.Errorf("Props = %+v", props)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	if _, err := Parse([]byte("post_process: [Nonsense]")); err == nil {
		t.Error("Expected error for unknown post-process step")
	}
}

func TestParseUnknownPropertyKind(t *testing.T) {
	if _, err := Parse([]byte("properties: [{name: X, kind: matrix5, value: 1}]")); err == nil {
		t.Error("Expected error for unknown property kind")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != Default().Listen {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}
