package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/service"
)

type mockMonitor struct {
	startFn           func(stores []domain.Store, items []domain.ShoppingItem, radiusMeters float64, sink service.AlertSink) error
	stopFn            func()
	positionChangedFn func(ctx context.Context, pos domain.Coordinate) error
	statusFn          func() service.MonitorStatus
}

func (m *mockMonitor) Start(stores []domain.Store, items []domain.ShoppingItem, radiusMeters float64, sink service.AlertSink) error {
	return m.startFn(stores, items, radiusMeters, sink)
}

func (m *mockMonitor) Stop() {
	m.stopFn()
}

func (m *mockMonitor) PositionChanged(ctx context.Context, pos domain.Coordinate) error {
	return m.positionChangedFn(ctx, pos)
}

func (m *mockMonitor) Status() service.MonitorStatus {
	return m.statusFn()
}

type mockItemLister struct {
	outstandingFn func(ctx context.Context) ([]domain.ShoppingItem, error)
}

func (m *mockItemLister) Outstanding(ctx context.Context) ([]domain.ShoppingItem, error) {
	return m.outstandingFn(ctx)
}

func noopSink() service.AlertSink {
	return service.AlertSinkFunc(func(context.Context, *domain.AlertEvent) error { return nil })
}

func setupMonitorRouter(monitor geofenceMonitor, items itemLister, directory storeDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMonitorHandler(monitor, items, directory, noopSink())
	h.Register(r.Group(""))
	return r
}

func TestStartMonitor_Success(t *testing.T) {
	var startedStores []domain.Store
	var startedItems []domain.ShoppingItem
	var startedRadius float64
	var evaluated *domain.Coordinate

	monitor := &mockMonitor{
		startFn: func(stores []domain.Store, items []domain.ShoppingItem, radiusMeters float64, sink service.AlertSink) error {
			startedStores = stores
			startedItems = items
			startedRadius = radiusMeters
			if sink == nil {
				t.Fatal("expected sink wired through")
			}
			return nil
		},
		positionChangedFn: func(_ context.Context, pos domain.Coordinate) error {
			evaluated = &pos
			return nil
		},
		statusFn: func() service.MonitorStatus {
			return service.MonitorStatus{Active: true, StoreCount: 1, ItemCount: 2, RadiusMeters: 200}
		},
	}
	items := &mockItemLister{
		outstandingFn: func(_ context.Context) ([]domain.ShoppingItem, error) {
			return []domain.ShoppingItem{
				{ID: "i1", Name: "milk", Category: "grocery"},
				{ID: "i2", Name: "eggs", Category: "grocery"},
			}, nil
		},
	}
	directory := &mockStoreDirectory{
		nearbyFn: func(_ context.Context, center domain.Coordinate, radiusMeters float64, category string) ([]domain.Store, error) {
			if radiusMeters != 5000 {
				t.Fatalf("expected default search radius, got %f", radiusMeters)
			}
			if category != "" {
				t.Fatalf("expected no category filter, got %s", category)
			}
			return []domain.Store{{ID: "safeway-lafayette", Name: "Safeway", Coordinates: center}}, nil
		},
	}

	r := setupMonitorRouter(monitor, items, directory)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/start",
		strings.NewReader(`{"latitude":37.8351,"longitude":-122.1302,"radius_meters":200}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(startedStores) != 1 || len(startedItems) != 2 {
		t.Fatalf("unexpected snapshot: %d stores, %d items", len(startedStores), len(startedItems))
	}
	if startedRadius != 200 {
		t.Errorf("expected 200m radius, got %f", startedRadius)
	}
	if evaluated == nil {
		t.Fatal("expected initial evaluation pass")
	}
	if evaluated.Lat != 37.8351 {
		t.Errorf("expected 37.8351, got %f", evaluated.Lat)
	}

	var resp service.MonitorStatus
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Active {
		t.Error("expected active status in response")
	}
}

func TestStartMonitor_InvalidBody(t *testing.T) {
	r := setupMonitorRouter(&mockMonitor{}, &mockItemLister{}, &mockStoreDirectory{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/start", strings.NewReader(`not json`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStartMonitor_OutOfRangeCoordinates(t *testing.T) {
	r := setupMonitorRouter(&mockMonitor{}, &mockItemLister{}, &mockStoreDirectory{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/start",
		strings.NewReader(`{"latitude":91,"longitude":0,"radius_meters":200}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStartMonitor_EmptyList(t *testing.T) {
	monitor := &mockMonitor{
		startFn: func(_ []domain.Store, _ []domain.ShoppingItem, _ float64, _ service.AlertSink) error {
			return service.ErrInvalidConfiguration
		},
	}
	items := &mockItemLister{
		outstandingFn: func(_ context.Context) ([]domain.ShoppingItem, error) {
			return nil, nil
		},
	}
	directory := &mockStoreDirectory{
		nearbyFn: func(_ context.Context, _ domain.Coordinate, _ float64, _ string) ([]domain.Store, error) {
			return []domain.Store{{ID: "s1", Name: "Safeway"}}, nil
		},
	}

	r := setupMonitorRouter(monitor, items, directory)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/start",
		strings.NewReader(`{"latitude":37.8,"longitude":-122.1,"radius_meters":200}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStartMonitor_ItemFetchError(t *testing.T) {
	items := &mockItemLister{
		outstandingFn: func(_ context.Context) ([]domain.ShoppingItem, error) {
			return nil, errors.New("db down")
		},
	}

	r := setupMonitorRouter(&mockMonitor{}, items, &mockStoreDirectory{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/start",
		strings.NewReader(`{"latitude":37.8,"longitude":-122.1,"radius_meters":200}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestStopMonitor(t *testing.T) {
	stopped := false
	monitor := &mockMonitor{
		stopFn: func() { stopped = true },
		statusFn: func() service.MonitorStatus {
			return service.MonitorStatus{Active: false}
		},
	}

	r := setupMonitorRouter(monitor, &mockItemLister{}, &mockStoreDirectory{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/monitor/stop", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !stopped {
		t.Fatal("expected Stop to be called")
	}
}

func TestGetStatus(t *testing.T) {
	monitor := &mockMonitor{
		statusFn: func() service.MonitorStatus {
			return service.MonitorStatus{Active: true, StoreCount: 3, ItemCount: 5, RadiusMeters: 500}
		},
	}

	r := setupMonitorRouter(monitor, &mockItemLister{}, &mockStoreDirectory{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/monitor/status", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp service.MonitorStatus
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.StoreCount != 3 || resp.ItemCount != 5 {
		t.Fatalf("unexpected status: %+v", resp)
	}
}
