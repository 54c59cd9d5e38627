package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	handler "github.com/Witchkitt/grabbit-clean-main/module/core/internal/handler/http"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/handler/subscriber"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/database/postgres"
	directoryredis "github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/directory/redis"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/publisher/rabbitmq"
	"github.com/Witchkitt/grabbit-clean-main/module/core/service"
)

type Module struct {
	ListSvc     *service.ListService
	PositionSvc *service.PositionService
	Monitor     *service.GeofenceMonitor

	directory   *directoryredis.StoreDirectory
	itemHandler *handler.ItemHandler
	positionHdl *handler.PositionHandler
	storeHdl    *handler.StoreHandler
	monitorHdl  *handler.MonitorHandler
	subscriber  *subscriber.PositionSubscriber
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, redisClient *goredis.Client, alertCooldown time.Duration) (*Module, error) {
	itemRepo := postgres.NewItemRepo(db)
	positionRepo := postgres.NewPositionRepo(db)
	storeDir := directoryredis.NewStoreDirectory(redisClient)

	alertPub, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}

	listSvc := service.NewListService(itemRepo)
	positionSvc := service.NewPositionService(positionRepo)
	monitor := service.NewGeofenceMonitor(alertCooldown)
	sink := service.AlertSinkFunc(alertPub.PublishAlert)

	itemHdl := handler.NewItemHandler(listSvc)
	positionHdl := handler.NewPositionHandler(positionSvc)
	storeHdl := handler.NewStoreHandler(storeDir)
	monitorHdl := handler.NewMonitorHandler(monitor, listSvc, storeDir, sink)
	sub := subscriber.NewPositionSubscriber(mqttClient, positionSvc, monitor)

	return &Module{
		ListSvc:     listSvc,
		PositionSvc: positionSvc,
		Monitor:     monitor,
		directory:   storeDir,
		itemHandler: itemHdl,
		positionHdl: positionHdl,
		storeHdl:    storeHdl,
		monitorHdl:  monitorHdl,
		subscriber:  sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.itemHandler.Register(r)
	m.positionHdl.Register(r)
	m.storeHdl.Register(r)
	m.monitorHdl.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}

// SeedStores replaces the store directory snapshot.
func (m *Module) SeedStores(ctx context.Context, stores []domain.Store) error {
	return m.directory.Seed(ctx, stores)
}
