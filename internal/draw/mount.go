package draw

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// SurfaceLookup finds a host surface by its stable identifier.
type SurfaceLookup interface {
	Lookup(id string) (Canvas, bool)
}

// Mount binds e to the surface registered under id. When the surface already
// exists the bind happens now and the returned func does nothing. Otherwise
// the returned func is the host's view-ready hook: its first call retries the
// bind once, later calls do nothing. A surface that is still missing is
// skipped silently.
func Mount(e *Engine, surfaces SurfaceLookup, id string) (ready func()) {
	log := logrus.WithField("surface_id", id)

	bind := func() bool {
		if surfaces == nil {
			return false
		}
		c, ok := surfaces.Lookup(id)
		if !ok {
			return false
		}
		e.Attach(c)
		return true
	}

	if bind() {
		log.Debug("surface mounted immediately")
		return func() {}
	}

	log.Debug("surface not ready, deferring mount")
	var once sync.Once
	return func() {
		once.Do(func() {
			if bind() {
				log.Debug("surface mounted on view ready")
				return
			}
			log.Debug("surface missing on view ready, nothing to bind")
		})
	}
}
