package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

type positionService interface {
	GetLatest(ctx context.Context, deviceID string) (*domain.DevicePosition, error)
	GetHistory(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error)
}

type positionResponse struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type PositionHandler struct {
	positionSvc positionService
}

func NewPositionHandler(positionSvc positionService) *PositionHandler {
	return &PositionHandler{positionSvc: positionSvc}
}

func (h *PositionHandler) Register(r *gin.RouterGroup) {
	r.GET("/positions/:device_id", h.GetLatestPosition)
	r.GET("/positions/:device_id/history", h.GetHistory)
}

func (h *PositionHandler) GetLatestPosition(c *gin.Context) {
	deviceID := c.Param("device_id")

	p, err := h.positionSvc.GetLatest(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}

	c.JSON(http.StatusOK, toPositionResponse(p))
}

func (h *PositionHandler) GetHistory(c *gin.Context) {
	deviceID := c.Param("device_id")

	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start parameter"})
		return
	}

	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end parameter"})
		return
	}

	query := &domain.PositionHistoryQuery{
		DeviceID: deviceID,
		Start:    time.Unix(start, 0),
		End:      time.Unix(end, 0),
	}

	positions, err := h.positionSvc.GetHistory(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	results := make([]positionResponse, len(positions))
	for i, p := range positions {
		results[i] = toPositionResponse(&p)
	}
	c.JSON(http.StatusOK, results)
}

func toPositionResponse(p *domain.DevicePosition) positionResponse {
	return positionResponse{
		DeviceID:  p.DeviceID,
		Latitude:  p.Location.Lat,
		Longitude: p.Location.Lon,
		Timestamp: p.Location.Timestamp.Unix(),
	}
}
