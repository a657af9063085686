package main

import (
	"io"
	"log"
	"os"

	"noiratelier/internal/config"
	"noiratelier/internal/http/handlers"
	"noiratelier/internal/repos"
	"noiratelier/internal/seed"
	"noiratelier/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	catalog, err := services.NewCatalogService(seed.Products(), cfg.QueryCacheSize)
	if err != nil {
		log.Fatal(err)
	}
	blog := services.NewBlogService(seed.Posts())

	app := handlers.NewApp(db, cfg, catalog, blog, handlers.AppOptions{AccessLog: true})
	log.Printf("[http] listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
