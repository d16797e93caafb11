package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/adapters/out/metrics"
	"fooddelivery/internal/adapters/out/payment"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/websocket"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived component of the process. The
// in-memory repositories are the source of truth; the database only holds
// snapshots of them.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	deps    commands.Deps
	sources queries.Sources

	hub      *websocket.Hub
	registry *prometheus.Registry
	kafka    *kafka.Publisher
}

// NewCompositionRoot wires the application. gormDB may be nil, in which case
// snapshots are disabled.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		hub:      websocket.NewHub(logger),
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	activity := memory.NewActivityLog(config.ActivityLogLimit)
	sinks := []events.Sink{
		{Name: "websocket", Publisher: c.hub},
		{Name: "metrics", Publisher: metrics.NewSink(c.registry)},
		{Name: "activity", Publisher: events.NewActivityRecorder(activity)},
	}
	if config.HasKafka() {
		publisher, err := kafka.NewPublisher(strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic, logger)
		if err != nil {
			return nil, err
		}
		c.kafka = publisher
		sinks = append(sinks, events.Sink{Name: "kafka", Publisher: publisher})
	}

	c.deps = commands.Deps{
		Foods:      memory.NewFoodRepository(),
		Users:      memory.NewUserRepository(),
		Carts:      memory.NewCartRepository(),
		Orders:     memory.NewOrderRepository(),
		Complaints: memory.NewComplaintRepository(),
		Payments:   payment.NewSimulator(config.PaymentLimit),
		Events:     events.NewCompositePublisher(logger, sinks...),
		Policy:     services.NewTransitionPolicy(config.CancellationWindow),
		Clock:      time.Now,
		Logger:     logger,
	}
	if gormDB != nil {
		store := postgres.NewGormSnapshotStore(gormDB)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate snapshot tables: %w", err)
		}
		c.deps.Snapshots = store
	}

	c.sources = queries.Sources{
		Foods:      c.deps.Foods,
		Users:      c.deps.Users,
		Carts:      c.deps.Carts,
		Orders:     c.deps.Orders,
		Complaints: c.deps.Complaints,
		Activity:   activity,
	}
	return c, nil
}

func (c *CompositionRoot) Deps() commands.Deps {
	return c.deps
}

func (c *CompositionRoot) Hub() *websocket.Hub {
	return c.hub
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		AddFoodItem:           commands.NewAddFoodItemCommandHandler(c.deps),
		RemoveFoodItem:        commands.NewRemoveFoodItemCommandHandler(c.deps),
		SetFoodStock:          commands.NewSetFoodStockCommandHandler(c.deps),
		UpdateFoodPrice:       commands.NewUpdateFoodPriceCommandHandler(c.deps),
		EditFoodItem:          commands.NewEditFoodItemCommandHandler(c.deps),
		SetRestaurantOpen:     commands.NewSetRestaurantOpenCommandHandler(c.deps),
		AddToCart:             commands.NewAddToCartCommandHandler(c.deps),
		RemoveFromCart:        commands.NewRemoveFromCartCommandHandler(c.deps),
		ClearCart:             commands.NewClearCartCommandHandler(c.deps),
		Reorder:               commands.NewReorderCommandHandler(c.deps),
		Checkout:              commands.NewCheckoutCommandHandler(c.deps),
		ChangeStatus:          commands.NewChangeStatusCommandHandler(c.deps),
		PostMessage:           commands.NewPostMessageCommandHandler(c.deps),
		RateOrder:             commands.NewRateOrderCommandHandler(c.deps),
		AttachComplaint:       commands.NewAttachComplaintCommandHandler(c.deps),
		ResolveOrderComplaint: commands.NewResolveOrderComplaintCommandHandler(c.deps),
		FileComplaint:         commands.NewFileComplaintCommandHandler(c.deps),
		ResolveComplaint:      commands.NewResolveComplaintCommandHandler(c.deps),
		RegisterUser:          commands.NewRegisterUserCommandHandler(c.deps),
		UpdateProfile:         commands.NewUpdateProfileCommandHandler(c.deps),
		DeleteCustomer:        commands.NewDeleteCustomerCommandHandler(c.deps),
		EditUser:              commands.NewEditUserCommandHandler(c.deps),

		ListFoods:        queries.NewListFoodsQueryHandler(c.sources),
		ListCategories:   queries.NewListCategoriesQueryHandler(c.sources),
		GetFoodReviews:   queries.NewGetFoodReviewsQueryHandler(c.sources),
		GetShipperRating: queries.NewGetShipperRatingsQueryHandler(c.sources),
		GetCart:          queries.NewGetCartQueryHandler(c.sources),
		ListOrders:       queries.NewListOrdersQueryHandler(c.sources),
		GetOrderDetails:  queries.NewGetOrderDetailsQueryHandler(c.sources),
		ResolveShortID:   queries.NewResolveShortIDQueryHandler(c.sources),
		GetChat:          queries.NewGetChatQueryHandler(c.sources),
		ListComplaints:   queries.NewListComplaintsQueryHandler(c.sources),
		ListActivity:     queries.NewListActivityQueryHandler(c.sources),
	}, c.deps.Users)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(commands.NewSaveSnapshotCommandHandler(c.deps), c.config.SnapshotSchedule, c.logger)
}

// LoadSnapshot restores the last saved state. It reports false when there is
// no store or the store is empty.
func (c *CompositionRoot) LoadSnapshot(ctx context.Context) (bool, error) {
	loaded, err := commands.NewLoadSnapshotCommandHandler(c.deps).Handle(ctx, commands.NewLoadSnapshotCommand())
	if errors.Is(err, commands.ErrNoSnapshotStore) {
		return false, nil
	}
	return loaded, err
}

func (c *CompositionRoot) SaveSnapshot(ctx context.Context) error {
	err := commands.NewSaveSnapshotCommandHandler(c.deps).Handle(ctx, commands.NewSaveSnapshotCommand())
	if errors.Is(err, commands.ErrNoSnapshotStore) {
		return nil
	}
	return err
}

func (c *CompositionRoot) Close() error {
	if c.kafka == nil {
		return nil
	}
	return c.kafka.Close()
}
