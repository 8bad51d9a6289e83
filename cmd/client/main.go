package main

import (
	"net/http"
	"os"
	"time"

	"github.com/robinjoseph08/golib/logger"
	"github.com/snnyvrz/bookcatalog/internal/client"
	"github.com/snnyvrz/bookcatalog/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	app := &cli.App{
		Name:        "catalog-client",
		Usage:       "list and delete books of the catalog",
		Description: "Interactive menu talking to the book catalog server named in appsettings.json.",
		Action: func(c *cli.Context) error {
			settings, err := config.LoadSettings(config.SettingsPath())
			if err != nil {
				return err
			}

			api := client.New(settings.BaseURL(), &http.Client{Timeout: 100 * time.Second})
			return client.NewMenu(api, os.Stdin, os.Stdout).Run(c.Context)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("client error")
	}
}
