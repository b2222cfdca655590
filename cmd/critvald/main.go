package main

import (
	"log"

	"github.com/joho/godotenv"

	"critval/api"
	"critval/internal"
	"critval/internal/config"
)

func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	srv := api.NewServer(cfg, internal.DefaultLogger)
	if err := srv.Run(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
