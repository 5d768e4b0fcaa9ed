package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/caffissimo/admin-api/internal/config"
	"github.com/caffissimo/admin-api/internal/router"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; everything has a default.
	godotenv.Load()

	cfg := config.Load()

	st := store.NewMemory(store.NewDataset())
	r := router.New(cfg, st)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
