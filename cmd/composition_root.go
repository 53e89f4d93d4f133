package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/inmemory"
	"warehouse/internal/adapters/out/postgres/snapshotrepo"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// CompositionRoot wires the domain, the application layer and the adapters
// together. All use case handlers are created from the single set of shared
// dependencies held here, so every handler observes the same warehouse state.
type CompositionRoot struct {
	logger *slog.Logger
	trail  *audit.Trail

	registry *inventory.Registry
	facility *storage.Facility
	engine   *services.PlacementEngine

	orderRepo    ports.OrderRepository
	shipmentRepo ports.ShipmentRepository
	snapshotRepo ports.SnapshotRepository
}

// NewCompositionRoot builds the full dependency graph. The previous snapshot
// is loaded from the database when one exists, otherwise the warehouse starts
// empty. Restoring state never writes to the audit trail.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	trail := audit.NewTrail()

	snapshotRepo, err := snapshotrepo.NewGormSnapshotRepository(gormDB, trail, logger)
	if err != nil {
		return nil, fmt.Errorf("create snapshot repository: %w", err)
	}
	if err := snapshotRepo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate snapshot schema: %w", err)
	}

	registry, facility, restoredOrders, err := restoreState(ctx, snapshotRepo, config, trail, logger)
	if err != nil {
		return nil, err
	}

	engine, err := services.NewPlacementEngine(facility, logger)
	if err != nil {
		return nil, fmt.Errorf("create placement engine: %w", err)
	}

	orderRepo := inmemory.NewOrderRepository()
	for _, restored := range restoredOrders {
		if err := orderRepo.Add(ctx, restored); err != nil {
			return nil, fmt.Errorf("restore order %s: %w", restored.ID(), err)
		}
	}

	return &CompositionRoot{
		logger:       logger,
		trail:        trail,
		registry:     registry,
		facility:     facility,
		engine:       engine,
		orderRepo:    orderRepo,
		shipmentRepo: inmemory.NewShipmentRepository(),
		snapshotRepo: snapshotRepo,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	return commands.NewRegisterProductCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	return commands.NewRemoveProductCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateUpdatePriceCommandHandler() commands.UpdatePriceCommandHandler {
	return commands.NewUpdatePriceCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateAddLocationCommandHandler() commands.AddLocationCommandHandler {
	return commands.NewAddLocationCommandHandler(c.facility)
}

func (c *CompositionRoot) CreatePlaceProductCommandHandler() commands.PlaceProductCommandHandler {
	return commands.NewPlaceProductCommandHandler(c.registry, c.engine)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.registry, c.orderRepo, c.trail)
}

func (c *CompositionRoot) CreatePickOrderCommandHandler() commands.PickOrderCommandHandler {
	return commands.NewPickOrderCommandHandler(c.registry, c.orderRepo)
}

// CreateShipOrderCommandHandler wires the ship use case. The nil random
// source gives each shipment its own seeded generator; a single shared one
// is not safe across concurrent requests.
func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderRepo, c.shipmentRepo, c.trail, nil)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderRepo, c.shipmentRepo)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateSaveSnapshotCommandHandler() commands.SaveSnapshotCommandHandler {
	return commands.NewSaveSnapshotCommandHandler(c.registry, c.facility, c.orderRepo, c.snapshotRepo)
}

func (c *CompositionRoot) CreateGetInventoryReportQueryHandler() queries.GetInventoryReportQueryHandler {
	return queries.NewGetInventoryReportQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetExpiringProductsQueryHandler() queries.GetExpiringProductsQueryHandler {
	return queries.NewGetExpiringProductsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetStorageCostQueryHandler() queries.GetStorageCostQueryHandler {
	return queries.NewGetStorageCostQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetFreeCapacityQueryHandler() queries.GetFreeCapacityQueryHandler {
	return queries.NewGetFreeCapacityQueryHandler(c.facility)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.trail)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.orderRepo, c.shipmentRepo)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every use case
// handler attached.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterProductCommandHandler(),
		c.CreateRemoveProductCommandHandler(),
		c.CreateUpdatePriceCommandHandler(),
		c.CreateAddLocationCommandHandler(),
		c.CreatePlaceProductCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreatePickOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateSaveSnapshotCommandHandler(),
		c.CreateGetInventoryReportQueryHandler(),
		c.CreateGetExpiringProductsQueryHandler(),
		c.CreateGetStorageCostQueryHandler(),
		c.CreateGetFreeCapacityQueryHandler(),
		c.CreateGetAuditTrailQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetExpiringProductsQueryHandler(),
		c.CreateSaveSnapshotCommandHandler(),
		c.trail,
		c.logger,
	)
}

// restoreState loads the last snapshot, falling back to an empty warehouse
// when none was saved yet.
func restoreState(
	ctx context.Context,
	snapshotRepo ports.SnapshotRepository,
	config Config,
	trail *audit.Trail,
	logger *slog.Logger,
) (*inventory.Registry, *storage.Facility, []*order.Order, error) {
	snapshot, err := snapshotRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil, nil, fmt.Errorf("load snapshot: %w", err)
		}

		facility, err := storage.NewFacility(config.FacilityName)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create facility: %w", err)
		}

		logger.InfoContext(ctx, "No snapshot found, starting with an empty warehouse")
		trail.LogInfo("Warehouse started empty")
		return inventory.NewRegistry(logger), facility, nil, nil
	}

	logger.InfoContext(ctx, "Warehouse state restored from snapshot",
		"products", snapshot.Registry.Len(),
		"locations", len(snapshot.Facility.Locations()),
		"orders", len(snapshot.Orders))
	trail.LogInfo("Warehouse state restored from snapshot")
	return snapshot.Registry, snapshot.Facility, snapshot.Orders, nil
}
