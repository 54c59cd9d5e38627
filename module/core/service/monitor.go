package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

var ErrInvalidConfiguration = errors.New("invalid monitor configuration")

const (
	defaultCooldown = 5 * time.Minute
	minRadiusMeters = 200
	// resetFactor: moving beyond radius*resetFactor clears a store's dedup
	// entries so returning to it alerts again.
	resetFactor = 3
)

// AlertSink consumes alert events. Delivery (notification, vibration, queue
// publish) is the sink's problem; the monitor only guarantees one call per
// qualifying event.
type AlertSink interface {
	Notify(ctx context.Context, alert *domain.AlertEvent) error
}

// AlertSinkFunc adapts a function to the AlertSink interface.
type AlertSinkFunc func(ctx context.Context, alert *domain.AlertEvent) error

func (f AlertSinkFunc) Notify(ctx context.Context, alert *domain.AlertEvent) error {
	return f(ctx, alert)
}

type MonitorStatus struct {
	Active       bool    `json:"active"`
	StoreCount   int     `json:"store_count"`
	ItemCount    int     `json:"item_count"`
	AlertedCount int     `json:"alerted_count"`
	InRangeCount int     `json:"in_range_count"`
	RadiusMeters float64 `json:"radius_meters"`
}

type dedupKey struct {
	storeID string
	bucket  int64
}

// GeofenceMonitor evaluates the user's position against nearby stores and
// emits at most one alert per store per cooldown window. Callers construct
// and own their instance; all public methods serialize on one mutex.
type GeofenceMonitor struct {
	mu         sync.Mutex
	active     bool
	generation uint64
	stores     []domain.Store
	items      []domain.ShoppingItem
	radius     float64
	sink       AlertSink
	alerted    map[dedupKey]struct{}
	inRange    map[string]struct{}
	cooldown   time.Duration

	now func() time.Time
}

// NewGeofenceMonitor returns an idle monitor. A non-positive cooldown falls
// back to the 5 minute default.
func NewGeofenceMonitor(cooldown time.Duration) *GeofenceMonitor {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &GeofenceMonitor{
		alerted:  make(map[dedupKey]struct{}),
		inRange:  make(map[string]struct{}),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Start activates the monitor with a snapshot of stores and outstanding
// items. Completed items are dropped from the snapshot. The radius is floored
// at 200m. Returns ErrInvalidConfiguration when there is nothing to watch or
// no sink to alert.
func (m *GeofenceMonitor) Start(stores []domain.Store, items []domain.ShoppingItem, radiusMeters float64, sink AlertSink) error {
	if len(stores) == 0 {
		return fmt.Errorf("%w: no stores to watch", ErrInvalidConfiguration)
	}
	var outstanding []domain.ShoppingItem
	for _, item := range items {
		if !item.Completed {
			outstanding = append(outstanding, item)
		}
	}
	if len(outstanding) == 0 {
		return fmt.Errorf("%w: no outstanding items", ErrInvalidConfiguration)
	}
	if sink == nil {
		return fmt.Errorf("%w: nil alert sink", ErrInvalidConfiguration)
	}

	radius := radiusMeters
	if radius < minRadiusMeters {
		radius = minRadiusMeters
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = true
	m.generation++
	m.stores = append([]domain.Store(nil), stores...)
	m.items = outstanding
	m.radius = radius
	m.sink = sink
	m.alerted = make(map[dedupKey]struct{})
	m.inRange = make(map[string]struct{})

	log.Printf("geofencing started: %d stores, %d items, %.0fm radius", len(m.stores), len(m.items), m.radius)
	return nil
}

// Stop idles the monitor, drops the configuration and sink, and clears the
// dedup table. Safe to call at any time, including from within a sink
// invocation; later PositionChanged calls are no-ops until the next Start.
func (m *GeofenceMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}
	m.active = false
	m.generation++
	m.stores = nil
	m.items = nil
	m.sink = nil
	m.alerted = make(map[dedupKey]struct{})
	m.inRange = make(map[string]struct{})

	log.Printf("geofencing stopped")
}

// PositionChanged runs one evaluation pass against the given position. The
// caller may be a push-style watcher or a poll timer; duplicate and rapid
// updates are safe because alerts dedup per (store, cooldown bucket). An
// invalid position is reported back to the caller and the monitor stays
// active, waiting for the next valid update.
func (m *GeofenceMonitor) PositionChanged(ctx context.Context, pos domain.Coordinate) error {
	if err := pos.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return nil
	}

	generation := m.generation
	bucket := m.now().UnixMilli() / m.cooldown.Milliseconds()
	inRange := make(map[string]struct{})
	var fired []*domain.AlertEvent

	for i := range m.stores {
		store := &m.stores[i]
		dist, err := Distance(pos, store.Coordinates)
		if err != nil {
			log.Printf("skipping store %s: %v", store.ID, err)
			continue
		}

		switch {
		case dist <= m.radius:
			inRange[store.ID] = struct{}{}
			matched := MatchItems(store, m.items)
			if len(matched) == 0 {
				continue
			}
			key := dedupKey{storeID: store.ID, bucket: bucket}
			if _, seen := m.alerted[key]; seen {
				continue
			}
			m.alerted[key] = struct{}{}
			fired = append(fired, &domain.AlertEvent{
				StoreID:        store.ID,
				StoreName:      store.Name,
				Items:          matched,
				DistanceMeters: dist,
				Timestamp:      m.now(),
			})
		case dist > m.radius*resetFactor:
			m.evictLocked(store.ID, bucket)
		}
	}

	m.inRange = inRange
	sink := m.sink
	m.mu.Unlock()

	// Dispatch outside the lock so a sink may call Stop without deadlock
	// and a slow sink cannot stall the next evaluation pass.
	for _, alert := range fired {
		m.dispatch(ctx, sink, generation, alert)
	}
	return nil
}

// Status reports read-only monitor introspection.
func (m *GeofenceMonitor) Status() MonitorStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MonitorStatus{
		Active:       m.active,
		StoreCount:   len(m.stores),
		ItemCount:    len(m.items),
		AlertedCount: len(m.alerted),
		InRangeCount: len(m.inRange),
		RadiusMeters: m.radius,
	}
}

// evictLocked removes the store's dedup entries after the user has left its
// vicinity, and garbage-collects expired buckets while it is at it.
func (m *GeofenceMonitor) evictLocked(storeID string, currentBucket int64) {
	for key := range m.alerted {
		if key.storeID == storeID || key.bucket < currentBucket {
			delete(m.alerted, key)
		}
	}
}

// dispatch delivers one alert unless the monitor was stopped or restarted
// since the event was collected. Sink failures and panics are contained so
// they never halt future evaluation passes.
func (m *GeofenceMonitor) dispatch(ctx context.Context, sink AlertSink, generation uint64, alert *domain.AlertEvent) {
	m.mu.Lock()
	live := m.active && m.generation == generation
	m.mu.Unlock()
	if !live {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("alert sink panic for store %s: %v", alert.StoreID, r)
		}
	}()
	if err := sink.Notify(ctx, alert); err != nil {
		log.Printf("alert sink error for store %s: %v", alert.StoreID, err)
	}
}
