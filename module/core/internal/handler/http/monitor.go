package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/service"
)

type geofenceMonitor interface {
	Start(stores []domain.Store, items []domain.ShoppingItem, radiusMeters float64, sink service.AlertSink) error
	Stop()
	PositionChanged(ctx context.Context, pos domain.Coordinate) error
	Status() service.MonitorStatus
}

type itemLister interface {
	Outstanding(ctx context.Context) ([]domain.ShoppingItem, error)
}

type startMonitorRequest struct {
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	RadiusMeters       float64 `json:"radius_meters"`
	SearchRadiusMeters float64 `json:"search_radius_meters"`
}

// MonitorHandler controls the geofence monitor lifecycle: starting snapshots
// the outstanding items and the stores around the given position, then runs
// an initial evaluation pass at that position.
type MonitorHandler struct {
	monitor   geofenceMonitor
	items     itemLister
	directory storeDirectory
	sink      service.AlertSink
}

func NewMonitorHandler(monitor geofenceMonitor, items itemLister, directory storeDirectory, sink service.AlertSink) *MonitorHandler {
	return &MonitorHandler{
		monitor:   monitor,
		items:     items,
		directory: directory,
		sink:      sink,
	}
}

func (h *MonitorHandler) Register(r *gin.RouterGroup) {
	r.POST("/monitor/start", h.StartMonitor)
	r.POST("/monitor/stop", h.StopMonitor)
	r.GET("/monitor/status", h.GetStatus)
}

func (h *MonitorHandler) StartMonitor(c *gin.Context) {
	var req startMonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	position := domain.Coordinate{Lat: req.Latitude, Lon: req.Longitude}
	if err := position.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	searchRadius := req.SearchRadiusMeters
	if searchRadius <= 0 {
		searchRadius = defaultSearchRadiusMeters
	}
	if searchRadius > maxSearchRadiusMeters {
		searchRadius = maxSearchRadiusMeters
	}

	ctx := c.Request.Context()

	items, err := h.items.Outstanding(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}

	stores, err := h.directory.Nearby(ctx, position, searchRadius, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch nearby stores"})
		return
	}

	if err := h.monitor.Start(stores, items, req.RadiusMeters, h.sink); err != nil {
		if errors.Is(err, service.ErrInvalidConfiguration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start monitoring"})
		return
	}

	// Initial pass at the starting position, like the first fix after
	// enabling location watching.
	if err := h.monitor.PositionChanged(ctx, position); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "initial evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, h.monitor.Status())
}

func (h *MonitorHandler) StopMonitor(c *gin.Context) {
	h.monitor.Stop()
	c.JSON(http.StatusOK, h.monitor.Status())
}

func (h *MonitorHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Status())
}
