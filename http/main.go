package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/herocatalog/superhero-catalog/config"
	"github.com/herocatalog/superhero-catalog/http/controller"
	routes "github.com/herocatalog/superhero-catalog/http/route"
	infraPkg "github.com/herocatalog/superhero-catalog/infra"
	"github.com/herocatalog/superhero-catalog/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()

	infra, err := infraPkg.InitInfra(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize infrastructure: %v", err)
	}
	defer infra.Close()

	repo := repository.InitRepository(infra)
	ctrl := controller.NewController(cfg, infra, repo)
	router := routes.SetupRouter(ctrl)

	addr := ":" + cfg.EnvConfig.Server.Port
	infra.Logger.Infof("[HTTP] Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
