package main

import (
	"context"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/handlers"
)

func main() {
	log.Namespace = "settlements.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	store := dao.NewDAO(cfg)
	if indexer, ok := store.(dao.Indexer); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = indexer.EnsureIndexes(ctx)
		cancel()
		if err != nil {
			log.Error(err, log.Data{"database": cfg.Database})
			return
		}
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg, store)

	log.Info("Starting settlements.api service", log.Data{"bind_addr": cfg.BindAddr, "storage_backend": cfg.StorageBackend})
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting settlements.api service")
}
