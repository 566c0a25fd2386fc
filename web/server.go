// Package web is the asset viewer server: it lists the assets of a
// directory, imports them on demand through the native library and
// serves summaries and glTF conversions to the browser frontend.
package web

import (
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Latias94/asset-importer/config"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
)

type Server struct {
	fs    vfs.FileSystem
	flags uint32
	props []sys.Property
}

func StartServer(addr string, fs vfs.FileSystem, webPath string, cfg *config.Config) error {
	flags, err := cfg.Flags()
	if err != nil {
		return err
	}
	props, err := cfg.Props()
	if err != nil {
		return err
	}
	s := &Server{fs: fs, flags: flags, props: props}

	r := mux.NewRouter()
	r.HandleFunc("/json/assets", s.HandlerAssetList)
	r.HandleFunc("/json/asset/{file}", s.HandlerAssetSummary)
	r.HandleFunc("/json/formats", s.HandlerFormats)
	r.HandleFunc("/dump/asset/{file}", s.HandlerAssetGLTF)
	r.HandleFunc("/ws/status", s.HandlerStatusWS)

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(webPath, "data"))))

	h := handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(r))

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
