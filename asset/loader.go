package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/lixenwraith/aura/core"
)

// Loader fetches glyphs from a filesystem, caching parsed results by URL
// Concurrent loads of the same URL share one read and parse
type Loader struct {
	fsys    fs.FS
	group   singleflight.Group
	glyphs  *glyphCache
	fetches atomic.Int64
}

// NewLoader creates a loader over fsys holding roughly capacity glyphs
func NewLoader(fsys fs.FS, capacity int) *Loader {
	return &Loader{
		fsys:   fsys,
		glyphs: newGlyphCache(capacity),
	}
}

// Load returns the glyph at url, reading it at most once across concurrent callers
func (l *Loader) Load(ctx context.Context, url string) (*Glyph, error) {
	if g, ok := l.glyphs.Get(url); ok {
		return g, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := l.group.DoChan(url, func() (any, error) {
		if g, ok := l.glyphs.Get(url); ok {
			return g, nil
		}
		l.fetches.Add(1)
		g, err := l.fetch(url)
		if err != nil {
			return nil, err
		}
		l.glyphs.Set(url, g)
		return g, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Glyph), nil
	}
}

func (l *Loader) fetch(url string) (*Glyph, error) {
	data, err := fs.ReadFile(l.fsys, url)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
		}
		return nil, fmt.Errorf("read glyph %s: %w", url, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse glyph %s: %w", url, err)
	}
	core.Logger().Debug("glyph loaded", "url", url, "elements", len(g.Elements))
	return g, nil
}

// Fetches returns how many underlying reads have been issued
func (l *Loader) Fetches() int64 { return l.fetches.Load() }

// Cached returns the number of glyphs held in the cache
func (l *Loader) Cached() int { return l.glyphs.Len() }

// Forget drops url from the cache so the next Load re-reads it
func (l *Loader) Forget(url string) {
	l.glyphs.Delete(url)
	l.group.Forget(url)
}
