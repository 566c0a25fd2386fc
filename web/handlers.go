package web

import (
	"bytes"
	"log"
	"net/http"
	"path/filepath"
	"sort"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/Latias94/asset-importer/exporter"
	"github.com/Latias94/asset-importer/gltfconv"
	"github.com/Latias94/asset-importer/importer"
	"github.com/Latias94/asset-importer/scene"
	"github.com/Latias94/asset-importer/status"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
	"github.com/Latias94/asset-importer/webutils"
)

func (s *Server) newImporter(label string) *importer.Importer {
	return importer.New().
		SetPostProcess(s.flags).
		SetFileSystem(s.fs).
		SetProgressHandler(status.NewHandler(label))
}

func (s *Server) decode(file string) (*scene.Scene, error) {
	if !s.fs.Exists(file) {
		return nil, errors.Errorf("no such asset %q", file)
	}
	return s.newImporter("import " + file).DecodeFile(file)
}

func (s *Server) HandlerAssetList(w http.ResponseWriter, r *http.Request) {
	lister, ok := s.fs.(vfs.Lister)
	if !ok {
		webutils.WriteError(w, errors.New("asset source cannot list files"))
		return
	}
	files, err := lister.List(".")
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	supported := make([]string, 0, len(files))
	for _, f := range files {
		if importable(f) {
			supported = append(supported, f)
		}
	}
	sort.Strings(supported)
	webutils.WriteJson(w, supported)
}

type meshSummary struct {
	Name     string `json:"name"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Bones    int    `json:"bones"`
	UVLayers int    `json:"uvLayers"`
	Material uint32 `json:"material"`
}

type assetSummary struct {
	Name       string        `json:"name"`
	Incomplete bool          `json:"incomplete"`
	Nodes      int           `json:"nodes"`
	Meshes     []meshSummary `json:"meshes"`
	Materials  []string      `json:"materials"`
	Animations int           `json:"animations"`
	Textures   int           `json:"textures"`
	Lights     int           `json:"lights"`
	Cameras    int           `json:"cameras"`
}

func summarize(sc *scene.Scene) *assetSummary {
	sum := &assetSummary{
		Name:       sc.Name,
		Incomplete: sc.Incomplete(),
		Animations: len(sc.Animations),
		Textures:   len(sc.Textures),
		Lights:     len(sc.Lights),
		Cameras:    len(sc.Cameras),
	}
	if sc.RootNode != nil {
		sc.RootNode.Walk(func(*scene.Node) { sum.Nodes++ })
	}
	for _, m := range sc.Meshes {
		sum.Meshes = append(sum.Meshes, meshSummary{
			Name:     m.Name,
			Vertices: m.VertexCount(),
			Faces:    len(m.Faces),
			Bones:    len(m.Bones),
			UVLayers: m.UVChannelCount(),
			Material: m.MaterialIndex,
		})
	}
	for _, mat := range sc.Materials {
		sum.Materials = append(sum.Materials, mat.Name())
	}
	return sum
}

func (s *Server) HandlerAssetSummary(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	sc, err := s.decode(file)
	if err != nil {
		log.Printf("[web] Import of %q failed: %v", file, err)
		status.Error("import %s: %v", file, err)
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJson(w, summarize(sc))
}

func (s *Server) HandlerAssetGLTF(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	sc, err := s.decode(file)
	if err != nil {
		log.Printf("[web] Import of %q failed: %v", file, err)
		status.Error("import %s: %v", file, err)
		webutils.WriteError(w, err)
		return
	}

	doc, err := gltfconv.NewDocument(sc)
	if err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "convert %q", file))
		return
	}
	var buf bytes.Buffer
	if err := gltfconv.EncodeBinary(&buf, doc); err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "encode %q", file))
		return
	}
	status.Info("converted %s", file)
	webutils.WriteFile(w, &buf, file+".glb")
}

type formatsResponse struct {
	Version string             `json:"version"`
	Import  []string           `json:"import"`
	Export  []sys.ExportFormat `json:"export"`
}

func (s *Server) HandlerFormats(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, &formatsResponse{
		Version: sys.VersionString(),
		Import:  sys.ImportExtensions(),
		Export:  exporter.Formats(),
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *Server) HandlerStatusWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}

func importable(name string) bool {
	ext := filepath.Ext(name)
	return ext != "" && sys.IsExtensionSupported(ext)
}
