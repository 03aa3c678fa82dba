package state

import (
	"fmt"
	"sort"
	"sync"

	"ChronoDraw/internal/draw"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewSurfaceID returns a fresh stable identifier for a drawing surface.
func NewSurfaceID() string {
	return "surface-" + uuid.NewString()
}

// Registry is the host view's table of mounted drawing surfaces.
type Registry struct {
	surfaces map[string]*draw.Surface
	mu       sync.RWMutex
}

var _ draw.SurfaceLookup = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		surfaces: make(map[string]*draw.Surface),
	}
}

// Create makes a surface of the given size under id and registers it.
// An empty id gets a generated one.
func (r *Registry) Create(id string, width, height int) (*draw.Surface, error) {
	if id == "" {
		id = NewSurfaceID()
	}
	s, err := draw.NewSurface(id, width, height)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	if err := r.Register(s); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Register adds s. IDs must be unique.
func (r *Registry) Register(s *draw.Surface) error {
	if s == nil {
		return fmt.Errorf("surface is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.surfaces[s.ID()]; exists {
		return fmt.Errorf("surface %s already registered", s.ID())
	}
	r.surfaces[s.ID()] = s

	logrus.WithFields(logrus.Fields{
		"surface_id": s.ID(),
		"width":      s.Width(),
		"height":     s.Height(),
	}).Info("Surface registered")
	return nil
}

// Lookup implements draw.SurfaceLookup.
func (r *Registry) Lookup(id string) (draw.Canvas, bool) {
	s, ok := r.Surface(id)
	if !ok {
		return nil, false
	}
	return s, true
}

// Surface returns the concrete surface registered under id.
func (r *Registry) Surface(id string) (*draw.Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[id]
	return s, ok
}

// Remove tears down the surface under id. It reports whether one existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	s, exists := r.surfaces[id]
	delete(r.surfaces, id)
	r.mu.Unlock()

	if !exists {
		return false
	}
	if err := s.Close(); err != nil {
		logrus.WithField("surface_id", id).WithError(err).Warn("Failed to close surface")
	}
	logrus.WithField("surface_id", id).Info("Surface removed")
	return true
}

// IDs returns the registered surface IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
