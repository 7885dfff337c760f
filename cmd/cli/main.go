package main

import (
	"context"
	"log"
	"os"

	"github.com/wedmac/wedmac-admin/internal/buildinfo"
	"github.com/wedmac/wedmac-admin/internal/client/cli"
	"github.com/wedmac/wedmac-admin/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	app.Run(ctx)
}
