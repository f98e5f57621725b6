package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petzim/petzim-services/api/internal/config"
	"github.com/petzim/petzim-services/api/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		cfg.ServerLog.Fatalf("falha na conexão com o MongoDB: %v", err)
	}

	app := server.New(cfg, client)
	if err := app.Run(); err != nil {
		log.Fatalf("falha ao iniciar o servidor: %v", err)
	}
}
