package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/ibeloyar/printbee/internal/app"
	"github.com/ibeloyar/printbee/internal/config"
	"github.com/ibeloyar/printbee/pgk/logger"
	"github.com/joho/godotenv"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		lg.Warnf("failed to load .env: %v", err)
	}

	cfg, err := config.ReadWeb()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.RunWeb(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
