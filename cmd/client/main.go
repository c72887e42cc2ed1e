package main

import (
	"context"

	"github.com/planitapp/planit/internal/client/cli"
	"github.com/planitapp/planit/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
