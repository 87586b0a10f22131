package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	. "github.com/mestoapp/mesto-go"
	"github.com/mestoapp/mesto-go/auth"
	"github.com/mestoapp/mesto-go/config"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}

	if err = client.Ping(ctx, nil); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}

	users := client.Database(cfg.DBName).Collection("users")
	cards := client.Database(cfg.DBName).Collection("cards")

	if err := EnsureUserIndexes(ctx, users); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer([]byte(cfg.SigningKey), cfg.TokenTTL)
	userSvc := NewUserService(NewMongoUserRepository(users), tokens)
	cardSvc := NewCardService(NewMongoCardRepository(cards), NewMongoUserRepository(users))

	srv := NewServer(userSvc, cardSvc, tokens, logger)

	logger.Info("server started", zap.String("addr", cfg.Addr))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(cfg.Addr, srv.Router())))
}
