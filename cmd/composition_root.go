package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "granary/internal/adapters/in/http"
	"granary/internal/adapters/out/labelfile"
	"granary/internal/adapters/out/memory"
	"granary/internal/core/application/usecases/commands"
	"granary/internal/core/application/usecases/queries"
	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"
	"granary/internal/generated/servers"
	"granary/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	labels     goods.LabelTable
	store      *memory.LedgerStore
	uowFactory *memory.UnitOfWorkFactory
}

// NewCompositionRoot creates the storage ledger described by config and the
// in-memory store that owns it.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	labels, err := labelfile.Load(config.GoodsLabelsFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	ledger, err := storage.NewLedger(config.ContainerCapacity, config.StorageCapacity)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create storage ledger: %w", err)
	}

	store, err := memory.NewLedgerStore(ledger)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger.Info("Storage ledger created",
		"storage_id", ledger.ID().String(),
		"container_capacity", ledger.ContainerCapacity(),
		"storage_capacity", ledger.StorageCapacity(),
		"max_containers", ledger.MaxContainers(),
	)

	return CompositionRoot{
		config:     config,
		logger:     logger,
		labels:     labels,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
	}, nil
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddGoodsCommandHandler() commands.AddGoodsCommandHandler {
	return commands.NewAddGoodsCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateTakeGoodsCommandHandler() commands.TakeGoodsCommandHandler {
	return commands.NewTakeGoodsCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateRemoveContainerCommandHandler() commands.RemoveContainerCommandHandler {
	return commands.NewRemoveContainerCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateSweepEmptyContainersCommandHandler() commands.SweepEmptyContainersCommandHandler {
	return commands.NewSweepEmptyContainersCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateGetStorageQueryHandler() queries.GetStorageQueryHandler {
	return queries.NewGetStorageQueryHandler(c.store, c.labels)
}

func (c *CompositionRoot) CreateGetContainerQueryHandler() queries.GetContainerQueryHandler {
	return queries.NewGetContainerQueryHandler(c.store, c.labels)
}

func (c *CompositionRoot) CreateGetAmountQueryHandler() queries.GetAmountQueryHandler {
	return queries.NewGetAmountQueryHandler(c.store)
}

func (c *CompositionRoot) CreateDescribeStorageQueryHandler() queries.DescribeStorageQueryHandler {
	return queries.NewDescribeStorageQueryHandler(c.store, c.labels)
}

// CreateRouter wires every use case into the echo instance.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		AddGoods:        c.CreateAddGoodsCommandHandler(),
		TakeGoods:       c.CreateTakeGoodsCommandHandler(),
		RemoveContainer: c.CreateRemoveContainerCommandHandler(),
		Sweep:           c.CreateSweepEmptyContainersCommandHandler(),
		GetStorage:      c.CreateGetStorageQueryHandler(),
		GetContainer:    c.CreateGetContainerQueryHandler(),
		GetAmount:       c.CreateGetAmountQueryHandler(),
		DescribeStorage: c.CreateDescribeStorageQueryHandler(),
	}, c.logger)

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	e, err := httpadapter.NewRouter(server, swagger, c.logger)
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(EchoLogLevel(c.config.LogLevel))

	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedules{
			StockReport:         c.config.StockReportSchedule,
			EmptyContainerSweep: c.config.EmptyContainerSweepSchedule,
		},
		jobs.NewStockReportJob(c.CreateGetStorageQueryHandler(), c.CreateDescribeStorageQueryHandler(), c.logger),
		jobs.NewEmptyContainerSweepJob(c.CreateSweepEmptyContainersCommandHandler(), c.logger),
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
