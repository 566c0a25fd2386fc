package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Latias94/asset-importer/gltfconv"
	"github.com/Latias94/asset-importer/importer"
	"github.com/Latias94/asset-importer/progress"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
)

func main() {
	var in, out string
	var verbose bool
	flag.StringVar(&in, "in", "", "Path to source asset")
	flag.StringVar(&out, "out", "", "Output .glb path (default: source path with .glb extension)")
	flag.BoolVar(&verbose, "v", false, "Log import progress")
	flag.Parse()

	if in == "" {
		flag.PrintDefaults()
		return
	}
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".glb"
	}

	imp := importer.New().
		SetPostProcess(sys.ProcessTriangulate | sys.ProcessGenSmoothNormals | sys.ProcessJoinIdenticalVertices).
		SetFileSystem(vfs.NewDirFS(filepath.Dir(in)))
	if verbose {
		imp.SetProgressHandler(progress.NewPrint())
	}

	sc, err := imp.DecodeFile(filepath.Base(in))
	if err != nil {
		log.Fatalf("Failed to import %q: %v", in, err)
	}

	doc, err := gltfconv.NewDocument(sc)
	if err != nil {
		log.Fatalf("Failed to convert %q: %v", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("Failed to create %q: %v", out, err)
	}
	defer f.Close()

	if err := gltfconv.EncodeBinary(f, doc); err != nil {
		log.Fatalf("Failed to encode %q: %v", out, err)
	}
	log.Printf("[gltfexport] Written %q", out)
}
