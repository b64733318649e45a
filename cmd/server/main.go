package main

import (
	"context"
	"log"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// infra setup
	pool, err := infra.NewExportsPool(ctx)
	if err != nil {
		log.Printf("warning: exports DB not available: %v", err)
	} else {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	dataDir := os.Getenv("RESUME_DATA_DIR")
	if dataDir == "" {
		dataDir = "resume-data"
	}
	store, err := repo.NewFileStore(dataDir)
	if err != nil {
		log.Printf("warning: state store not available, edits will not persist: %v", err)
		store = nil
	}

	var builderStore usecase.Store
	if store != nil {
		builderStore = store
	}
	builder := usecase.NewBuilder(builderStore, 0)

	exportsRepo := repo.NewExportsRepo(pool)
	exporter := usecase.NewExporter(builder, infra.NewChromedpSink(), exportsRepo, dataDir+"/generated")

	app := fiber.New()

	h := httpadapter.NewHandler(builder, exporter, exportsRepo, ai.NewClient())
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
