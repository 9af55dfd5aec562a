package geofence

import (
	"sort"
	"testing"

	"georeminder/internal/model"
)

// Two points roughly 130 m apart in central Krakow.
const (
	centerLat = 50.0614
	centerLng = 19.9366
	nearLat   = 50.0620
	nearLng   = 19.9380
	farLat    = 50.1000
	farLng    = 20.0000
)

func TestObserve_EnterTransitionOnly(t *testing.T) {
	d := NewDetector()
	d.Upsert(model.Task{ID: "t1", Latitude: centerLat, Longitude: centerLng, Radius: 200})

	if got := d.Observe(farLat, farLng); len(got) != 0 {
		t.Fatalf("outside report entered %v", got)
	}

	if got := d.Observe(nearLat, nearLng); len(got) != 1 || got[0] != "t1" {
		t.Fatalf("first inside report = %v, want [t1]", got)
	}

	// Staying inside must not re-trigger.
	if got := d.Observe(centerLat, centerLng); len(got) != 0 {
		t.Fatalf("repeated inside report entered %v", got)
	}

	// Leave and come back.
	if got := d.Observe(farLat, farLng); len(got) != 0 {
		t.Fatalf("exit report entered %v", got)
	}
	if got := d.Observe(nearLat, nearLng); len(got) != 1 {
		t.Fatalf("re-entry report = %v, want [t1]", got)
	}
}

func TestObserve_MultipleRegions(t *testing.T) {
	d := NewDetector()
	d.Upsert(model.Task{ID: "a", Latitude: centerLat, Longitude: centerLng, Radius: 500})
	d.Upsert(model.Task{ID: "b", Latitude: nearLat, Longitude: nearLng, Radius: 500})
	d.Upsert(model.Task{ID: "c", Latitude: farLat, Longitude: farLng, Radius: 50})

	got := d.Observe(centerLat, centerLng)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("entered = %v, want [a b]", got)
	}
}

func TestUpsert_MoveResetsState(t *testing.T) {
	d := NewDetector()
	d.Upsert(model.Task{ID: "t1", Latitude: centerLat, Longitude: centerLng, Radius: 200})
	d.Observe(centerLat, centerLng) // now inside

	// Same region again: state survives, no re-entry.
	d.Upsert(model.Task{ID: "t1", Latitude: centerLat, Longitude: centerLng, Radius: 200})
	if got := d.Observe(centerLat, centerLng); len(got) != 0 {
		t.Fatalf("unchanged upsert re-entered %v", got)
	}

	// Moved region: next report inside counts as a fresh entry.
	d.Upsert(model.Task{ID: "t1", Latitude: nearLat, Longitude: nearLng, Radius: 200})
	if got := d.Observe(nearLat, nearLng); len(got) != 1 {
		t.Fatalf("moved region report = %v, want [t1]", got)
	}
}

func TestRemoveAndSync(t *testing.T) {
	d := NewDetector()
	d.Upsert(model.Task{ID: "t1", Latitude: centerLat, Longitude: centerLng, Radius: 200})
	d.Remove("t1")
	if got := d.Observe(centerLat, centerLng); len(got) != 0 {
		t.Errorf("removed region entered %v", got)
	}

	d.Sync([]model.Task{
		{ID: "a", Latitude: centerLat, Longitude: centerLng, Radius: 200},
		{ID: "done", Latitude: centerLat, Longitude: centerLng, Radius: 200, IsCompleted: true},
	})
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (completed tasks skipped)", d.Len())
	}
	if got := d.Observe(centerLat, centerLng); len(got) != 1 || got[0] != "a" {
		t.Errorf("after sync entered %v, want [a]", got)
	}
}
