package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/talawarsneha/project-management-app/config"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/recordstore"
	"github.com/talawarsneha/project-management-app/internal/seed"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	if cfg.MemoryDriver() {
		log.Fatal("seeding a memory store is pointless; set STORAGE_DRIVER=redis")
	}

	ctx := context.Background()
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	if err := helpers.PingRedis(ctx, rdb); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	store := recordstore.NewRedisStore(rdb)
	keys := kvstore.NewKeys(cfg.StorageNamespace)

	if err := seed.Run(ctx, store, codec.New(logger), keys, logger); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	fmt.Printf("demo accounts ready:\n  manager: %s / %s\n  member:  %s / %s\n",
		seed.ManagerEmail, seed.ManagerPassword, seed.MemberEmail, seed.MemberPassword)
}
