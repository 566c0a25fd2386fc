package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/Latias94/asset-importer/exporter"
	"github.com/Latias94/asset-importer/importer"
	"github.com/Latias94/asset-importer/scene"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
)

func main() {
	var in string
	var formats, dump bool
	flag.StringVar(&in, "in", "", "Path to asset")
	flag.BoolVar(&formats, "formats", false, "List import/export formats and exit")
	flag.BoolVar(&dump, "dump", false, "Dump the full decoded scene")
	flag.Parse()

	if formats {
		fmt.Printf("assimp %s\n", sys.VersionString())
		fmt.Printf("import: %v\n", sys.ImportExtensions())
		for _, f := range exporter.Formats() {
			fmt.Printf("export: %-12s .%-5s %s\n", f.ID, f.Extension, f.Description)
		}
		return
	}
	if in == "" {
		flag.PrintDefaults()
		return
	}

	imp := importer.New().
		SetPostProcess(sys.ProcessTriangulate | sys.ProcessGenBoundingBoxes).
		SetFileSystem(vfs.NewDirFS(filepath.Dir(in)))

	handle, err := imp.ImportFile(filepath.Base(in))
	if err != nil {
		log.Fatalf("Failed to import %q: %v", in, err)
	}
	defer handle.Free()

	if mem, err := handle.Memory(); err == nil {
		fmt.Printf("native memory: %d bytes (%d meshes, %d materials)\n",
			mem.Total, mem.Meshes, mem.Materials)
	}

	sc, err := handle.Decode()
	if err != nil {
		log.Fatalf("Failed to decode %q: %v", in, err)
	}

	if dump {
		spew.Dump(sc)
		return
	}

	fmt.Printf("scene %q incomplete=%v\n", sc.Name, sc.Incomplete())
	var bounds scene.AABB
	for i, m := range sc.Meshes {
		bounds = bounds.Union(m.Bounds())
		fmt.Printf("mesh %d %q: %d vertices, %d faces, %d bones, %d uv layers\n",
			i, m.Name, m.VertexCount(), len(m.Faces), len(m.Bones), m.UVChannelCount())
	}
	for i, m := range sc.Materials {
		fmt.Printf("material %d %q: %d properties\n", i, m.Name(), len(m.Properties))
	}
	for i, a := range sc.Animations {
		fmt.Printf("animation %d %q: %.2fs, %d channels\n",
			i, a.Name, a.DurationSeconds(), len(a.Channels))
	}
	fmt.Printf("textures=%d lights=%d cameras=%d\n",
		len(sc.Textures), len(sc.Lights), len(sc.Cameras))
	if len(sc.Meshes) > 0 {
		fmt.Printf("bounds min=%v max=%v\n", bounds.Min, bounds.Max)
	}
}
