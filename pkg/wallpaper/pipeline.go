package wallpaper

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dixieflatline76/wallhavener/config"
	"github.com/dixieflatline76/wallhavener/pkg/wallhaven"
	"github.com/dixieflatline76/wallhavener/util"
	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

// RunTimeout bounds a whole change run: search, download and apply.
const RunTimeout = 2 * time.Minute

// Searcher finds candidate wallpapers.
type Searcher interface {
	Search(ctx context.Context, q wallhaven.Query) ([]wallhaven.Wallpaper, error)
}

// Downloader retrieves raw image bytes.
type Downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Result describes a completed change.
type Result struct {
	RunID     string
	Path      string
	Wallpaper wallhaven.Wallpaper
	// Joined is set for callers that shared a run started by another trigger.
	Joined    bool
}

// Changer runs the search, pick, download and apply sequence. Concurrent calls to Run share
// the run already in flight instead of starting a second one.
type Changer struct {
	searcher   Searcher
	downloader Downloader
	applier    *Applier
	pick       func([]wallhaven.Wallpaper) wallhaven.Wallpaper
	group      singleflight.Group
	runs       *util.SafeCounter
}

// NewChanger wires a Changer.
func NewChanger(s Searcher, d Downloader, a *Applier) *Changer {
	return &Changer{
		searcher:   s,
		downloader: d,
		applier:    a,
		pick:       func(ws []wallhaven.Wallpaper) wallhaven.Wallpaper { return lo.Sample(ws) },
		runs:       util.NewSafeInt(),
	}
}

// Runs returns how many runs actually executed (joined calls are not counted).
func (c *Changer) Runs() int {
	return c.runs.Value()
}

// QueryFromConfig maps settings onto search filters.
func QueryFromConfig(cfg *config.Config) wallhaven.Query {
	return wallhaven.Query{
		APIKey:      cfg.APIKey,
		Q:           cfg.Query,
		Categories:  cfg.Categories,
		Purity:      cfg.Purity,
		Resolutions: cfg.Resolutions,
		Ratios:      cfg.Ratios,
		Sorting:     cfg.Sorting,
		Order:       cfg.Order,
		TopRange:    cfg.TopRange,
	}
}

// FileName derives the local file name of a wallpaper: wallhaven_<id>.<ext>.
func FileName(w wallhaven.Wallpaper) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, w.ID)
	return fmt.Sprintf("wallhaven_%s.%s", id, w.Extension())
}

// Run changes the wallpaper once using cfg, which must not be mutated while the run is active.
func (c *Changer) Run(ctx context.Context, cfg *config.Config) (Result, error) {
	var leader bool
	v, err, shared := c.group.Do("change", func() (interface{}, error) {
		leader = true
		return c.run(ctx, cfg)
	})
	res, _ := v.(Result)
	if shared && !leader {
		res.Joined = true
		log.Printf("[%s] Change request joined the run already in progress", res.RunID)
	}
	return res, err
}

func (c *Changer) run(ctx context.Context, cfg *config.Config) (Result, error) {
	c.runs.Increment()
	res := Result{RunID: uuid.NewString()}
	ctx, cancel := context.WithTimeout(ctx, RunTimeout)
	defer cancel()

	log.Printf("[%s] Searching wallhaven for %q (sorting %s)", res.RunID, cfg.Query, cfg.Sorting)
	results, err := c.searcher.Search(ctx, QueryFromConfig(cfg))
	if err != nil {
		return res, err
	}
	if len(results) == 0 {
		log.Printf("[%s] Search returned no results", res.RunID)
		return res, ErrNoResults
	}

	res.Wallpaper = c.pick(results)
	dest := filepath.Join(cfg.DownloadDir, FileName(res.Wallpaper))
	log.Printf("[%s] Picked %s out of %d, downloading %s", res.RunID, res.Wallpaper.ID, len(results), res.Wallpaper.Path)

	data, err := c.downloader.Fetch(ctx, res.Wallpaper.Path)
	if err != nil {
		return res, err
	}

	res.Path, err = c.applier.Apply(data, dest)
	if err != nil {
		return res, err
	}
	return res, nil
}
