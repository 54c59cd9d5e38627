package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

const (
	defaultSearchRadiusMeters = 5000
	maxSearchRadiusMeters     = 10000
)

type storeDirectory interface {
	Nearby(ctx context.Context, center domain.Coordinate, radiusMeters float64, category string) ([]domain.Store, error)
}

type StoreHandler struct {
	directory storeDirectory
}

func NewStoreHandler(directory storeDirectory) *StoreHandler {
	return &StoreHandler{directory: directory}
}

func (h *StoreHandler) Register(r *gin.RouterGroup) {
	r.GET("/stores/nearby", h.GetNearbyStores)
}

func (h *StoreHandler) GetNearbyStores(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude parameter"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude parameter"})
		return
	}

	radius := float64(defaultSearchRadiusMeters)
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius parameter"})
			return
		}
		if radius > maxSearchRadiusMeters {
			radius = maxSearchRadiusMeters
		}
	}

	center := domain.Coordinate{Lat: lat, Lon: lon}
	if err := center.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	stores, err := h.directory.Nearby(c.Request.Context(), center, radius, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch nearby stores"})
		return
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	c.JSON(http.StatusOK, stores)
}
