package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/a-h/templ"
	"github.com/tigrisdata-community/flashhop/models"
)

// ErrUnknownSkin is returned when the configured skin has not been registered.
var ErrUnknownSkin = errors.New("web: unknown flash skin")

// SkinFunc builds the component that displays a flash message.
type SkinFunc func(f models.Fields) templ.Component

// Skins renders flash messages with the skin named at construction time.
// It implements models.Renderer and is safe for concurrent use.
type Skins struct {
	name string

	mu    sync.RWMutex
	skins map[string]SkinFunc
}

// NewSkins returns a renderer for the named skin with the built-in skins
// "bootstrap" and "plain" registered. The name is only resolved when a
// message is rendered.
func NewSkins(name string) *Skins {
	return &Skins{
		name: name,
		skins: map[string]SkinFunc{
			"bootstrap": Bootstrap,
			"plain":     Plain,
		},
	}
}

// Name returns the configured skin.
func (s *Skins) Name() string {
	return s.name
}

// Register adds or replaces a skin.
func (s *Skins) Register(name string, fn SkinFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skins[name] = fn
}

func (s *Skins) RenderFlash(ctx context.Context, w io.Writer, f models.Fields) error {
	s.mu.RLock()
	fn, ok := s.skins[s.name]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, s.name)
	}

	return fn(f).Render(ctx, w)
}

// Component adapts the renderer for use inside other components.
func (s *Skins) Component(f models.Fields) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return s.RenderFlash(ctx, w, f)
	})
}

func kind(f models.Fields) string {
	if f.Type == nil || *f.Type == "" {
		return models.KindInfo
	}
	return *f.Type
}
