// Package ui hosts the settings window, the tray icon and the controller tying them to the
// wallpaper pipeline.
package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/wallhavener/asset"
	"github.com/dixieflatline76/wallhavener/config"
	"github.com/dixieflatline76/wallhavener/pkg/autostart"
	"github.com/dixieflatline76/wallhavener/pkg/wallpaper"
	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/spf13/afero"
)

// Changer runs one wallpaper change.
type Changer interface {
	Run(ctx context.Context, cfg *config.Config) (wallpaper.Result, error)
}

// Deps are the collaborators the App drives.
type Deps struct {
	Store     *config.Store
	Changer   Changer
	Autostart autostart.Manager
	FS        afero.Fs
	Assets    *asset.Manager
	// Hotkey binds the global change-now shortcut. Optional.
	Hotkey func(trigger func()) (stop func())
}

// App is the application controller. It owns the current settings and is the only writer of
// config.json.
type App struct {
	app      fyne.App
	deps     Deps
	appCfg   *config.AppConfig
	platform platform

	window fyne.Window
	form   *settingsForm
	tray   *trayController
	sched  *wallpaper.Scheduler

	mu         sync.Mutex
	cfg        *config.Config
	stopHotkey func()

	ctx      context.Context
	cancel   context.CancelFunc
	teardown sync.Once
}

// New loads the settings and builds the window, form and tray without showing anything.
func New(a fyne.App, deps Deps) *App {
	if deps.Assets == nil {
		deps.Assets = asset.NewManager()
	}
	if deps.Autostart == nil {
		deps.Autostart = autostart.Unsupported{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	wa := &App{
		app:        a,
		deps:       deps,
		appCfg:     config.NewAppConfig(a.Preferences()),
		platform:   getPlatform(),
		cfg:        deps.Store.Load(),
		ctx:        ctx,
		cancel:     cancel,
		stopHotkey: func() {},
	}
	wa.sched = wallpaper.NewScheduler(wa.ChangeNow)

	wa.window = a.NewWindow(config.AppName)
	wa.window.Resize(fyne.NewSize(640, 720))
	wa.window.CenterOnScreen()
	wa.window.SetCloseIntercept(wa.hideWindow)

	wa.form = newSettingsForm(wa.window, deps.FS, wa.config(), func() {
		msg, err := wa.saveSettings()
		if err != nil {
			msg = "Error: " + err.Error()
		}
		wa.form.setStatus(msg)
	}, wa.ChangeNow)
	about, _ := deps.Assets.GetText("about.txt")
	wa.window.SetContent(wa.form.content(about))

	icon, err := deps.Assets.GetIcon(asset.AppIcon)
	if err != nil {
		log.Printf("Failed to load app icon: %v", err)
	} else {
		a.SetIcon(icon)
		wa.window.SetIcon(icon)
	}
	trayIcon, err := deps.Assets.GetIcon(asset.TrayIcon)
	if err != nil {
		trayIcon = icon
	}
	wa.tray = newTrayController(a, wa.window, trayIcon, wa.ChangeNow, wa.ShowWindow, wa.Quit)
	return wa
}

// Init starts the tray, the timer and the hotkey, then shows the window unless the app starts
// minimized and a tray is available to bring it back.
func (wa *App) Init() {
	wa.tray.show()
	wa.sched.Reset(wa.config().Interval())
	if wa.deps.Hotkey != nil {
		// registration talks to the windowing system, so wait for the loop to be up
		wa.app.Lifecycle().SetOnStarted(func() {
			go wa.bindHotkey()
		})
	}

	if wa.config().StartMinimized && wa.tray.supported() {
		log.Print("Starting minimized to tray")
		wa.platform.TransformToBackground()
		return
	}
	wa.ShowWindow()
}

// Run blocks in the UI loop until Quit.
func (wa *App) Run() {
	wa.app.Run()
	wa.Teardown()
}

// Teardown stops background work. Safe to call more than once.
func (wa *App) Teardown() {
	wa.teardown.Do(func() {
		wa.sched.Stop()
		wa.mu.Lock()
		stop := wa.stopHotkey
		wa.mu.Unlock()
		stop()
		wa.cancel()
		log.Print("Shut down")
	})
}

func (wa *App) bindHotkey() {
	stop := wa.deps.Hotkey(wa.ChangeNow)
	wa.mu.Lock()
	wa.stopHotkey = stop
	wa.mu.Unlock()
}

// Quit ends the process, unlike closing the window which only hides it.
func (wa *App) Quit() {
	wa.app.Quit()
}

// ShowWindow restores and focuses the settings window.
func (wa *App) ShowWindow() {
	wa.platform.TransformToForeground()
	wa.window.Show()
	wa.window.RequestFocus()
}

// hideWindow runs when the window is closed. The app keeps running from the tray; without a tray
// there is no way back so closing quits.
func (wa *App) hideWindow() {
	if !wa.tray.isVisible() {
		wa.Quit()
		return
	}

	wa.window.Hide()
	wa.platform.TransformToBackground()
	if !wa.appCfg.GetTrayHintShown() {
		wa.app.SendNotification(fyne.NewNotification(config.AppName, "App minimized to tray."))
		wa.appCfg.SetTrayHintShown(true)
	}
}

// config returns the current settings. Callers must not modify them.
func (wa *App) config() *config.Config {
	wa.mu.Lock()
	defer wa.mu.Unlock()
	return wa.cfg
}

// saveSettings persists the form, restarts the timer with the new interval and syncs launch on
// startup. It must run on the UI goroutine. An autostart failure does not undo the save.
func (wa *App) saveSettings() (string, error) {
	cfg := wa.config().Clone()
	if err := wa.form.read(cfg); err != nil {
		return "", err
	}
	cfg.Normalize()

	if err := wa.deps.Store.Save(cfg); err != nil {
		return "", err
	}
	wa.mu.Lock()
	wa.cfg = cfg
	wa.mu.Unlock()
	log.Printf("Settings saved to %s", wa.deps.Store.Path())

	wa.sched.Reset(cfg.Interval())

	msg := "Settings saved successfully."
	if err := autostart.Apply(wa.deps.Autostart, cfg.LaunchOnBoot); err != nil {
		log.Printf("Autostart: %v", err)
		msg = fmt.Sprintf("%s Launch on startup could not be updated: %v", msg, err)
	}
	return msg, nil
}

// ChangeNow saves the form and changes the wallpaper in the background. It is safe to call
// from any goroutine: the tray, the timer, the hotkey and the button all use it.
func (wa *App) ChangeNow() {
	go wa.changeNow()
}

func (wa *App) changeNow() {
	var saveErr error
	fyne.DoAndWait(func() {
		_, saveErr = wa.saveSettings()
		if saveErr == nil {
			wa.form.setStatus("Changing wallpaper...")
		}
	})
	if saveErr != nil {
		wa.setStatus("Error: " + saveErr.Error())
		return
	}

	res, err := wa.deps.Changer.Run(wa.ctx, wa.config())
	if err != nil {
		log.Printf("Wallpaper change failed: %v", err)
	} else {
		log.Printf("[%s] Wallpaper changed: %s", res.RunID, res.Path)
	}
	wa.setStatus(wallpaper.StatusMessage(res, err))
}

// setStatus updates the status label from any goroutine.
func (wa *App) setStatus(msg string) {
	fyne.Do(func() {
		wa.form.setStatus(msg)
	})
}
