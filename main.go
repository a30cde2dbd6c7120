package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ytget/media-downloader/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// MEDIADL_* settings may come from a local .env file
	_ = godotenv.Load()

	os.Exit(cli.Execute(version))
}
