package main

import (
	"context"
	"log"

	"scholarship-fund-be/internal/bootstrap"
	"scholarship-fund-be/internal/config"
	"scholarship-fund-be/internal/server"
	"scholarship-fund-be/internal/tracer"
	"scholarship-fund-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	go func() {
		log.Println("Background: Starting approval notice consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
