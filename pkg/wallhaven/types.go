package wallhaven

import (
	"net/url"
	"path"
	"strings"
)

// Wallpaper is one search hit.
type Wallpaper struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	ShortURL   string `json:"short_url"`
	Path       string `json:"path"`
	FileType   string `json:"file_type"`
	Resolution string `json:"resolution"`
	Ratio      string `json:"ratio"`
	Purity     string `json:"purity"`
	Category   string `json:"category"`
	Thumbs     Thumbs `json:"thumbs"`
}

// Thumbs represents the different sizes of the image.
type Thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}

// Meta carries pagination details of a search response.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// searchResponse is the envelope returned by the search endpoint
type searchResponse struct {
	Data []Wallpaper `json:"data"`
	Meta Meta        `json:"meta"`
}

// Extension returns the file extension of the full-size image URL without the leading dot.
// When the URL carries none, the MIME type decides, defaulting to jpg.
func (w Wallpaper) Extension() string {
	p := w.Path
	if u, err := url.Parse(w.Path); err == nil {
		p = u.Path
	}
	if ext := strings.TrimPrefix(path.Ext(p), "."); ext != "" {
		return ext
	}
	switch w.FileType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
