package main

import (
	"flag"
	"log"

	"github.com/Latias94/asset-importer/config"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
	"github.com/Latias94/asset-importer/web"
)

func main() {
	var addr, dir, cfgPath, webPath string
	flag.StringVar(&addr, "i", "", "Address of server (overrides config)")
	flag.StringVar(&dir, "dir", "", "Path to directory with assets")
	flag.StringVar(&cfgPath, "config", "asset_browser.yaml", "Path to config file")
	flag.StringVar(&webPath, "web", "web", "Path to web frontend files")
	flag.Parse()

	if dir == "" {
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if addr != "" {
		cfg.Listen = addr
	}

	log.Printf("[main] Using assimp %s", sys.VersionString())

	if err := web.StartServer(cfg.Listen, vfs.NewDirFS(dir), webPath, cfg); err != nil {
		log.Fatal(err)
	}
}
