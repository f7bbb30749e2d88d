//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/tasks/event_cleanup"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/tasks/outbox_relay"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/config"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/kafka"

	deliveryRepo "github.com/ifybugsy/odiya-store-sub002/internal/repository/delivery"
	eventRepo "github.com/ifybugsy/odiya-store-sub002/internal/repository/event"
	notificationRepo "github.com/ifybugsy/odiya-store-sub002/internal/repository/notification"
	orderRepo "github.com/ifybugsy/odiya-store-sub002/internal/repository/order"
	sellerRepo "github.com/ifybugsy/odiya-store-sub002/internal/repository/seller"

	badgeService "github.com/ifybugsy/odiya-store-sub002/internal/service/badge"
	deliveryService "github.com/ifybugsy/odiya-store-sub002/internal/service/delivery"
	eventService "github.com/ifybugsy/odiya-store-sub002/internal/service/event"
	notificationService "github.com/ifybugsy/odiya-store-sub002/internal/service/notification"
	orderService "github.com/ifybugsy/odiya-store-sub002/internal/service/order"

	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
	"github.com/ifybugsy/odiya-store-sub002/pkg/tx"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHub,
		provideVerifier,

		provideOrderRepository,
		provideDeliveryRepository,
		provideNotificationRepository,
		provideEventRepository,
		provideSellerRepository,

		provideServiceNotification,
		provideServiceEvent,
		provideServiceDelivery,
		provideServiceOrder,
		provideServiceBadge,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceBadge), new(*badgeService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.NotificationService), new(*notificationService.Notification)),
		wire.Bind(new(orderService.EventLog), new(*eventService.Service)),
		wire.Bind(new(orderService.Broadcaster), new(*broadcast.Hub)),
		wire.Bind(new(orderService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderGetter), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.EventLog), new(*eventService.Service)),
		wire.Bind(new(deliveryService.Broadcaster), new(*broadcast.Hub)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(eventService.Repository), new(*eventRepo.Repository)),
		wire.Bind(new(badgeService.Repository), new(*sellerRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeWorkerApplication wires the background worker (cmd/worker-events).
func InitializeWorkerApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*WorkerApplication, error) {
	wire.Build(
		provideQuerier,
		provideEventRepository,
		provideWorkerServiceEvent,

		provideEventsCleanupInterval,
		provideOutboxRelayInterval,
		provideOutboxRelayBatchSize,

		provideEventCleanupTask,
		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(WorkerApplication), "*"),

		wire.Bind(new(eventService.Repository), new(*eventRepo.Repository)),
		wire.Bind(new(eventService.Producer), new(*kafka.Producer)),
		wire.Bind(new(event_cleanup.Service), new(*eventService.Service)),
		wire.Bind(new(outbox_relay.Service), new(*eventService.Service)),
	)
	return nil, nil
}
