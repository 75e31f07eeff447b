package cmd

import (
	"fmt"
	"log/slog"

	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/memory"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config         Config
	logger         *slog.Logger
	uowFactory     ports.UnitOfWorkFactory
	reader         ports.OrderReader
	clock          kernel.BusinessClock
	cutoff         services.CutoffPolicy
	dispatchPolicy services.AutoDispatchPolicy
}

// NewCompositionRoot wires the order store, clock and policies. gormDB is
// only used with StoragePostgres.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	cutoff, err := services.NewCutoffPolicy(config.CutoffHour)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("CUTOFF_HOUR: %w", err)
	}
	dispatchPolicy, err := services.NewAutoDispatchPolicy(config.DispatchHour)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("DISPATCH_HOUR: %w", err)
	}

	clock, err := kernel.LoadBusinessClock(config.BusinessTimezone)
	if err != nil {
		// The cutoff rule falls back to local time; auto-dispatch stays off until the zone loads.
		logger.Warn("business timezone unavailable, auto-dispatch disabled",
			"timezone", config.BusinessTimezone, "error", err)
	}

	root := CompositionRoot{
		config:         config,
		logger:         logger,
		clock:          clock,
		cutoff:         cutoff,
		dispatchPolicy: dispatchPolicy,
	}

	switch config.Storage {
	case StorageMemory:
		store, err := newDemoStore()
		if err != nil {
			return CompositionRoot{}, err
		}
		root.uowFactory = store
		root.reader = store
	default:
		if gormDB == nil {
			return CompositionRoot{}, fmt.Errorf("postgres storage needs a database connection")
		}
		factory := postgres.NewGormUnitOfWorkFactory(gormDB)
		root.uowFactory = factory
		root.reader = factory.OrderReader()
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock, c.cutoff)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchDueOrdersCommandHandler() *commands.DispatchDueOrdersCommandHandler {
	return commands.NewDispatchDueOrdersCommandHandler(c.orderUoWFactory(), c.clock, c.dispatchPolicy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader, c.CreateDispatchDueOrdersCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchDueOrdersCommandHandler(), c.config.DispatchSchedule, c.logger)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// newDemoStore seeds the in-memory store with one company and one location,
// since master data is managed outside this service.
func newDemoStore() (*memory.Store, error) {
	store := memory.NewStore()
	company, err := customer.NewCompany(1, "Empresa demo")
	if err != nil {
		return nil, err
	}
	location, err := customer.NewLocation(1, 1, "Casino demo", "")
	if err != nil {
		return nil, err
	}
	if err := store.AddCompany(company); err != nil {
		return nil, err
	}
	if err := store.AddLocation(location); err != nil {
		return nil, err
	}
	return store, nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
