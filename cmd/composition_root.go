package cmd

import (
	"log/slog"

	httpin "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/notify"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/outboxrepo"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/asset"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"
	"workorders/internal/jobs"
	"workorders/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   asset.Registry
	policy     workorder.TransitionPolicy
	clock      ports.Clock
	sender     ports.NotificationSender
	logger     *slog.Logger
}

// Option overrides a collaborator of the composition root.
type Option func(*CompositionRoot)

// WithClock replaces the system clock.
func WithClock(c ports.Clock) Option {
	return func(r *CompositionRoot) { r.clock = c }
}

// WithSender replaces the notification sender selected from the configuration.
func WithSender(s ports.NotificationSender) Option {
	return func(r *CompositionRoot) { r.sender = s }
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	registry asset.Registry,
	logger *slog.Logger,
	opts ...Option,
) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	policy, err := workorder.PolicyByName(cfg.TransitionPolicy)
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		policy:     policy,
		clock:      clock.System{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(&root)
	}
	if root.sender == nil {
		root.sender = notify.NewSender(cfg.NtfyURL, cfg.NtfyTimeout, logger)
	}

	return root, nil
}

func (c *CompositionRoot) CreateConflictDetector() *services.ConflictDetector {
	return services.NewConflictDetector(c.registry, outboxrepo.NewNotifier(c.gormDB, c.clock, c.logger))
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() *commands.CreateWorkOrderCommandHandler {
	handler := commands.NewCreateWorkOrderCommandHandler(c.workOrderUoWFactory(), c.CreateConflictDetector(), c.clock, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateUpdateWorkOrderStatusCommandHandler() *commands.UpdateWorkOrderStatusCommandHandler {
	handler := commands.NewUpdateWorkOrderStatusCommandHandler(c.workOrderUoWFactory(), c.policy, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateDeliverNotificationsCommandHandler() *commands.DeliverNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewDeliverNotificationsCommandHandler(f, c.sender, c.clock, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() queries.ListWorkOrdersQueryHandler {
	return queries.NewListWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProtectedAssetsQueryHandler() queries.ListProtectedAssetsQueryHandler {
	return queries.NewListProtectedAssetsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateWorkOrderCommandHandler(),
		c.CreateUpdateWorkOrderStatusCommandHandler(),
		c.CreateListWorkOrdersQueryHandler(),
		c.CreateGetWorkOrderQueryHandler(),
		c.CreateListProtectedAssetsQueryHandler(),
		c.logger,
	)
}

// CreateRouter builds the echo instance with every route and middleware.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), httpin.RouterConfig{
		AllowOrigins: c.cfg.CORSAllowOrigins,
		Debug:        c.cfg.LogLevel == "debug",
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateDeliverNotificationsCommandHandler(), c.cfg.Jobs, c.logger)
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
