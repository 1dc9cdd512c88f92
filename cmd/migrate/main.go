package main

import (
	"log"
	"os"

	"github.com/DanRulev/lingobot.git/internal/config"
	"github.com/DanRulev/lingobot.git/internal/storage/db"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const migrationsDir = "./migrations"

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal("failed to set dialect", zap.Error(err))
	}

	logger.Info("running migrations", zap.String("command", command), zap.String("dir", migrationsDir))
	switch command {
	case "up":
		err = goose.Up(conn.DB, migrationsDir)
	case "down":
		err = goose.Down(conn.DB, migrationsDir)
	case "status":
		err = goose.Status(conn.DB, migrationsDir)
	case "version":
		var version int64
		version, err = goose.GetDBVersion(conn.DB)
		if err == nil {
			logger.Info("current migration version", zap.Int64("version", version))
		}
	case "create":
		if len(os.Args) < 3 {
			logger.Fatal("usage: migrate create <migration_name>")
		}
		err = goose.Create(conn.DB, migrationsDir, os.Args[2], "sql")
	default:
		logger.Fatal("unknown command, available: up, down, status, version, create", zap.String("command", command))
	}
	if err != nil {
		logger.Fatal("migration failed", zap.String("command", command), zap.Error(err))
	}

	logger.Info("migrations done", zap.String("command", command))
}
