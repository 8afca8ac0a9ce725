package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/dixieflatline76/wallhavener/asset"
	"github.com/dixieflatline76/wallhavener/config"
	"github.com/dixieflatline76/wallhavener/pkg/autostart"
	"github.com/dixieflatline76/wallhavener/pkg/hotkey"
	"github.com/dixieflatline76/wallhavener/pkg/wallhaven"
	"github.com/dixieflatline76/wallhavener/pkg/wallpaper"
	"github.com/dixieflatline76/wallhavener/ui"
	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/spf13/afero"
)

func main() {
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to check for a running instance: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)

	fs := afero.NewOsFs()
	store := config.NewStore(fs, config.DefaultPath())
	httpClient := wallhaven.NewHTTPClient()
	changer := wallpaper.NewChanger(
		wallhaven.NewClient(httpClient),
		wallpaper.NewFetcher(httpClient),
		wallpaper.NewApplier(fs, wallpaper.NewSetter()),
	)

	starter, err := autostart.New()
	if err != nil {
		log.Printf("Launch on startup unavailable: %v", err)
		starter = autostart.Unsupported{}
	}

	wa := ui.New(app.NewWithID(config.AppID), ui.Deps{
		Store:     store,
		Changer:   changer,
		Autostart: starter,
		FS:        fs,
		Assets:    asset.NewManager(),
		Hotkey:    hotkey.Listen,
	})
	wa.Init()
	wa.Run()
}
