package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/delivery_location_put"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/notification_read_put"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/notifications_get"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/order_status_put"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/orders_get"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/seller_badge_get"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/tasks/event_cleanup"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/tasks/outbox_relay"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/auth"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/config"

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

	"github.com/ifybugsy/odiya-store-sub002/pkg/background"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
	"github.com/ifybugsy/odiya-store-sub002/pkg/querier"
	"github.com/ifybugsy/odiya-store-sub002/pkg/tx"
)

type (
	EventsCleanupInterval time.Duration
	OutboxRelayInterval   time.Duration
	OutboxRelayBatchSize  int
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServiceDelivery     ServiceDelivery
	ServiceNotification ServiceNotification
	ServiceBadge        ServiceBadge
	Hub                 *broadcast.Hub
	Verifier            *auth.Verifier
}

type ServiceOrder interface {
	order_status_put.Service
	orders_get.Service
}

type ServiceDelivery interface {
	delivery_location_put.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_put.Service
}

type ServiceBadge interface {
	seller_badge_get.Service
}

type WorkerApplication struct {
	BackgroundWorkers *background.Worker
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHub(log logger.Logger) *broadcast.Hub {
	return broadcast.NewHub(log)
}

func provideVerifier(cfg *config.Config) *auth.Verifier {
	return auth.NewVerifier(cfg.Auth.JWTSecret)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideSellerRepository(querier *querier.Querier) *sellerRepo.Repository {
	return sellerRepo.New(querier)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

// provideServiceEvent builds the event log as the HTTP service sees it:
// record only, no producer. Relaying to the broker runs in the worker binary.
func provideServiceEvent(repository eventService.Repository) *eventService.Service {
	return eventService.New(repository, nil)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	orders deliveryService.OrderGetter,
	events deliveryService.EventLog,
	broadcaster deliveryService.Broadcaster,
) *deliveryService.Delivery {
	return deliveryService.New(repository, orders, events, broadcaster)
}

func provideServiceOrder(
	repository orderService.Repository,
	notifications orderService.NotificationService,
	events orderService.EventLog,
	broadcaster orderService.Broadcaster,
	delivery orderService.DeliveryService,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, notifications, events, broadcaster, delivery, txManager)
}

func provideServiceBadge(repository badgeService.Repository) *badgeService.Service {
	return badgeService.New(repository)
}

func provideWorkerServiceEvent(
	repository eventService.Repository,
	producer eventService.Producer,
) *eventService.Service {
	return eventService.New(repository, producer)
}

func provideEventsCleanupInterval(cfg *config.Config) EventsCleanupInterval {
	return EventsCleanupInterval(cfg.Tasks.EventsCleanupInterval)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxRelayBatchSize(cfg *config.Config) OutboxRelayBatchSize {
	return OutboxRelayBatchSize(cfg.Tasks.OutboxRelayBatchSize)
}

func provideEventCleanupTask(
	log logger.Logger,
	eventsService event_cleanup.Service,
	interval EventsCleanupInterval,
) *event_cleanup.EventCleanup {
	return event_cleanup.NewEventCleanup(log, eventsService, time.Duration(interval))
}

func provideOutboxRelayTask(
	log logger.Logger,
	eventsService outbox_relay.Service,
	interval OutboxRelayInterval,
	batchSize OutboxRelayBatchSize,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, eventsService, time.Duration(interval), int(batchSize))
}

func provideTaskList(
	eventCleanupTask *event_cleanup.EventCleanup,
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		eventCleanupTask,
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
