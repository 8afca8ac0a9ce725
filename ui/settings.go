package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/wallhavener/config"
	"github.com/dixieflatline76/wallhavener/pkg/wallhaven"
	"github.com/dixieflatline76/wallhavener/pkg/wallpaper"
	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/spf13/afero"
)

var (
	categoryLabels = [3]string{"General", "Anime", "People"}
	purityLabels   = [3]string{"SFW", "Sketchy", "NSFW"}
)

// errInterval is returned when the change interval is not a whole number of minutes above zero.
var errInterval = errors.New("change interval must be a whole number of minutes greater than zero")

// settingsForm holds one control per config field.
type settingsForm struct {
	window fyne.Window
	fs     afero.Fs

	apiKey       *widget.Entry
	apiKeyStatus *widget.Label
	query        *widget.Entry
	categories   [3]*widget.Check
	purity       [3]*widget.Check
	resolutions  *widget.Entry
	ratios       *widget.Entry
	sorting      *widget.Select
	topRange     *widget.Select
	order        *widget.Select
	interval     *widget.Entry

	startMinimized *widget.Check
	launchOnBoot   *widget.Check

	downloadDir     string
	downloadDirText *widget.Label
	chooseDirButton *widget.Button

	saveButton   *widget.Button
	changeButton *widget.Button
	status       *widget.Label
}

// newSettingsForm creates the controls and fills them from cfg. onSave and onChange are bound
// to the two action buttons.
func newSettingsForm(window fyne.Window, fs afero.Fs, cfg *config.Config, onSave, onChange func()) *settingsForm {
	f := &settingsForm{window: window, fs: fs}

	f.apiKey = widget.NewPasswordEntry()
	f.apiKey.SetPlaceHolder("Enter your wallhaven.cc API Key")
	f.apiKey.Validator = validation.NewRegexp(wallhaven.APIKeyRegexp, "wallhaven API keys are 32 alpha numerics characters")
	f.apiKeyStatus = widget.NewLabel("")
	f.apiKey.OnChanged = func(s string) {
		if err := f.apiKey.Validate(); err != nil {
			setStatusLabel(f.apiKeyStatus, err.Error(), true)
			return
		}
		if s == "" {
			setStatusLabel(f.apiKeyStatus, "", false)
			return
		}
		setStatusLabel(f.apiKeyStatus, "API Key OK", false)
	}

	f.query = widget.NewEntry()
	f.query.SetPlaceHolder("Search terms, tags, @user or id:123")
	for i := range f.categories {
		f.categories[i] = widget.NewCheck(categoryLabels[i], nil)
		f.purity[i] = widget.NewCheck(purityLabels[i], nil)
	}
	f.resolutions = widget.NewEntry()
	f.resolutions.SetPlaceHolder("e.g. 1920x1080,2560x1440")
	f.ratios = widget.NewEntry()
	f.ratios.SetPlaceHolder("e.g. 16x9,21x9")

	f.topRange = widget.NewSelect(config.TopRanges, nil)
	f.order = widget.NewSelect(config.Orders, nil)
	f.sorting = widget.NewSelect(config.SortModes, func(s string) {
		f.syncTopRange()
	})

	f.interval = widget.NewEntry()
	f.interval.Validator = func(s string) error {
		_, err := parseInterval(s)
		return err
	}

	f.startMinimized = widget.NewCheck("Start minimized to tray", nil)
	f.launchOnBoot = widget.NewCheck("Launch on system startup", nil)

	f.downloadDirText = widget.NewLabel("")
	f.downloadDirText.Wrapping = fyne.TextWrapBreak
	f.chooseDirButton = widget.NewButton("Select Download Directory", f.showFolderDialog)

	f.saveButton = widget.NewButton("Save Settings", onSave)
	f.saveButton.Importance = widget.HighImportance
	f.changeButton = widget.NewButton("Change Wallpaper Now", onChange)

	f.status = widget.NewLabel("")
	f.status.Wrapping = fyne.TextWrapWord

	f.load(cfg)
	return f
}

// load copies cfg into the controls.
func (f *settingsForm) load(cfg *config.Config) {
	f.apiKey.SetText(cfg.APIKey)
	f.query.SetText(cfg.Query)
	for i := range f.categories {
		f.categories[i].SetChecked(config.FlagSet(cfg.Categories, i))
		f.purity[i].SetChecked(config.FlagSet(cfg.Purity, i))
	}
	f.resolutions.SetText(cfg.Resolutions)
	f.ratios.SetText(cfg.Ratios)
	f.sorting.SetSelected(cfg.Sorting)
	f.topRange.SetSelected(cfg.TopRange)
	f.order.SetSelected(cfg.Order)
	f.interval.SetText(strconv.Itoa(cfg.ChangeInterval))
	f.startMinimized.SetChecked(cfg.StartMinimized)
	f.launchOnBoot.SetChecked(cfg.LaunchOnBoot)
	f.setDownloadDir(cfg.DownloadDir)
	f.syncTopRange()
}

// read copies the controls into cfg. Nothing is written when a control holds an invalid value.
func (f *settingsForm) read(cfg *config.Config) error {
	if err := f.apiKey.Validate(); err != nil {
		return fmt.Errorf("invalid API key: %w", err)
	}
	minutes, err := parseInterval(f.interval.Text)
	if err != nil {
		return err
	}

	cfg.APIKey = strings.TrimSpace(f.apiKey.Text)
	cfg.Query = strings.TrimSpace(f.query.Text)
	cfg.Categories = config.FlagsString(f.categories[0].Checked, f.categories[1].Checked, f.categories[2].Checked)
	cfg.Purity = config.FlagsString(f.purity[0].Checked, f.purity[1].Checked, f.purity[2].Checked)
	cfg.Resolutions = strings.TrimSpace(f.resolutions.Text)
	cfg.Ratios = strings.TrimSpace(f.ratios.Text)
	cfg.Sorting = f.sorting.Selected
	cfg.TopRange = f.topRange.Selected
	cfg.Order = f.order.Selected
	cfg.ChangeInterval = minutes
	cfg.StartMinimized = f.startMinimized.Checked
	cfg.LaunchOnBoot = f.launchOnBoot.Checked
	cfg.DownloadDir = f.downloadDir
	return nil
}

func parseInterval(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, errInterval
	}
	return n, nil
}

// syncTopRange enables the range select only for toplist sorting.
func (f *settingsForm) syncTopRange() {
	if f.sorting.Selected == config.SortToplist {
		f.topRange.Enable()
	} else {
		f.topRange.Disable()
	}
}

func (f *settingsForm) setDownloadDir(dir string) {
	f.downloadDir = dir
	f.downloadDirText.SetText(dir)
}

// chooseDir accepts dir as the download directory if a file can be created in it.
func (f *settingsForm) chooseDir(dir string) error {
	if err := wallpaper.CheckWritable(f.fs, dir); err != nil {
		return err
	}
	f.setDownloadDir(dir)
	log.Printf("Download directory set to %s", dir)
	return nil
}

func (f *settingsForm) showFolderDialog() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			setStatusLabel(f.status, "Error: "+err.Error(), true)
			return
		}
		if uri == nil {
			return // cancelled
		}
		if err := f.chooseDir(uri.Path()); err != nil {
			setStatusLabel(f.status, "Error: "+err.Error(), true)
			return
		}
		setStatusLabel(f.status, "Download directory set. Save to keep it.", false)
	}, f.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// setStatus shows the outcome of the last operation. It must run on the UI goroutine.
func (f *settingsForm) setStatus(msg string) {
	setStatusLabel(f.status, msg, strings.HasPrefix(msg, "Error"))
}

// content lays the controls out in the window.
func (f *settingsForm) content(about string) fyne.CanvasObject {
	search := container.NewVBox(
		createSectionTitleLabel("wallhaven Search"),
		createSettingDescriptionLabel("Wallpapers are picked at random from one page of results matching these filters."),
		newSplitRow(createSettingTitleLabel("API Key:"), f.apiKey),
		newSplitRow(widget.NewLabel(""), f.apiKeyStatus),
		newSplitRow(createSettingTitleLabel("Search Query:"), f.query),
		newSplitRow(createSettingTitleLabel("Categories:"), container.NewHBox(f.categories[0], f.categories[1], f.categories[2])),
		newSplitRow(createSettingTitleLabel("Purity:"), container.NewHBox(f.purity[0], f.purity[1], f.purity[2])),
		newSplitRow(createSettingTitleLabel("Minimum Resolution:"), f.resolutions),
		newSplitRow(createSettingTitleLabel("Aspect Ratios:"), f.ratios),
		newSplitRow(createSettingTitleLabel("Sorting:"), f.sorting),
		newSplitRow(createSettingTitleLabel("Toplist Range:"), f.topRange),
		newSplitRow(createSettingTitleLabel("Order:"), f.order),
	)

	behaviour := container.NewVBox(
		widget.NewSeparator(),
		createSectionTitleLabel("Behaviour"),
		newSplitRow(createSettingTitleLabel("Change Interval (minutes):"), f.interval),
		newSplitRow(createSettingTitleLabel("Download Directory:"), f.downloadDirText),
		newSplitRow(widget.NewLabel(""), f.chooseDirButton),
		f.startMinimized,
		f.launchOnBoot,
	)

	footer := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(f.changeButton, layout.NewSpacer(), f.saveButton),
		f.status,
	)
	if about != "" {
		footer.Add(createSettingDescriptionLabel(about))
	}

	return container.NewBorder(nil, footer, nil, nil, container.NewVScroll(container.NewVBox(search, behaviour)))
}
