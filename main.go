package main

import (
	"campus-server/handlers"
	"campus-server/images"
	"campus-server/routes"
	"campus-server/setup"

	"github.com/gorilla/mux"
)

func main() {
	cfg := setup.MustLoadConfig()
	store := setup.MustInitDb(cfg)

	h := handlers.NewApiHandler(store, images.NewStorage(cfg.UploadsBucket, cfg.UploadsDir))

	r := mux.NewRouter()
	routes.AddHealthRoutes(r)
	routes.AddApiRoutes(r, h)

	if cfg.Env != "production" {
		routes.AddUploadsRoute(r, cfg.UploadsDir)
	}

	setup.StartServer(cfg, r)
}
