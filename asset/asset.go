package asset

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/wallhavener/util/log"
)

//go:embed text/*
var assets embed.FS

// Icon names.
const (
	AppIcon  = "app.png"
	TrayIcon = "tray.png"
)

const iconSize = 256

// Manager manages the loading of UI assets. Icons are drawn on first use and cached.
type Manager struct {
	mu    sync.Mutex
	icons map[string]fyne.Resource
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{icons: make(map[string]fyne.Resource)}
}

// GetImage renders the named icon as an image.
func (am *Manager) GetImage(name string) (image.Image, error) {
	var bg, fg color.Color
	switch name {
	case AppIcon:
		bg, fg = color.NRGBA{R: 0x24, G: 0x28, B: 0x33, A: 0xff}, color.NRGBA{R: 0x6c, G: 0xd4, B: 0xc4, A: 0xff}
	case TrayIcon:
		bg, fg = color.Transparent, color.White
	default:
		return nil, fmt.Errorf("unknown icon: %s", name)
	}

	// basicfont glyphs are 7x13; scale one up with nearest neighbour to keep the pixel edges crisp
	glyph := image.NewNRGBA(image.Rect(0, 0, 9, 13))
	d := font.Drawer{Dst: glyph, Src: image.NewUniform(fg), Face: basicfont.Face7x13, Dot: fixed.P(1, 11)}
	d.DrawString("W")
	mark := imaging.Resize(glyph, 0, iconSize*3/4, imaging.NearestNeighbor)

	return imaging.OverlayCenter(imaging.New(iconSize, iconSize, bg), mark, 1.0), nil
}

// GetIcon returns the named icon as a PNG resource.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	am.mu.Lock()
	defer am.mu.Unlock()
	if res, ok := am.icons[name]; ok {
		return res, nil
	}

	img, err := am.GetImage(name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Println("Error encoding icon:", err)
		return nil, err
	}

	res := fyne.NewStaticResource(name, buf.Bytes())
	am.icons[name] = res
	return res, nil
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(textBytes), nil
}
