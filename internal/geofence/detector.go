package geofence

import (
	"sync"

	"georeminder/internal/model"
	"georeminder/pkg/geo"
)

// region is one monitored circle. Kept separate from model.Task so the
// registry holds only what the hit test needs.
type region struct {
	taskID    string
	latitude  float64
	longitude float64
	radius    float64
}

// Detector turns raw location reports into enter-transition events. It keeps
// an inside/outside state per region and reports a region only on the
// transition from outside to inside, mirroring how mobile geofencing APIs
// deliver ENTER events.
type Detector struct {
	mu      sync.RWMutex
	regions map[string]region
	inside  map[string]bool
}

func NewDetector() *Detector {
	return &Detector{
		regions: make(map[string]region),
		inside:  make(map[string]bool),
	}
}

// Upsert registers or replaces the region for a task. Moving a region resets
// its inside-state so the next report inside it counts as an entry.
func (d *Detector) Upsert(t model.Task) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := region{
		taskID:    t.ID,
		latitude:  t.Latitude,
		longitude: t.Longitude,
		radius:    t.Radius,
	}
	if prev, ok := d.regions[t.ID]; ok && prev != next {
		delete(d.inside, t.ID)
	}
	d.regions[t.ID] = next
}

// Remove deregisters a task's region.
func (d *Detector) Remove(taskID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.regions, taskID)
	delete(d.inside, taskID)
}

// Sync replaces the whole registry with the regions of the given tasks.
// Used at startup to rebuild state from the store.
func (d *Detector) Sync(tasks []model.Task) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.regions = make(map[string]region, len(tasks))
	d.inside = make(map[string]bool)
	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		d.regions[t.ID] = region{
			taskID:    t.ID,
			latitude:  t.Latitude,
			longitude: t.Longitude,
			radius:    t.Radius,
		}
	}
}

// Len returns the number of monitored regions.
func (d *Detector) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.regions)
}

// Observe processes one location report and returns the task ids whose
// regions were entered by it. Staying inside a region yields nothing until
// a report outside it resets the state.
func (d *Detector) Observe(lat, lng float64) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entered []string
	for id, r := range d.regions {
		in := geo.DistanceMeters(lat, lng, r.latitude, r.longitude) <= r.radius
		was := d.inside[id]
		if in && !was {
			entered = append(entered, id)
		}
		d.inside[id] = in
	}
	return entered
}
