package snapshotrepo

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// facilityRowID is the primary key of the single facility row.
// A snapshot describes exactly one warehouse.
const facilityRowID = 1

var _ ports.SnapshotRepository = (*GormSnapshotRepository)(nil)

// GormSnapshotRepository implements SnapshotRepository using GORM.
//
// Save rewrites the whole snapshot inside one transaction, so readers never
// observe a half-written warehouse. Load rebuilds the aggregates through
// their restore constructors; restored orders write future lifecycle records
// to the trail passed at construction.
type GormSnapshotRepository struct {
	db     *gorm.DB
	trail  *audit.Trail
	logger *slog.Logger
}

// NewGormSnapshotRepository creates a new GORM snapshot repository.
// A nil logger falls back to slog.Default().
func NewGormSnapshotRepository(db *gorm.DB, trail *audit.Trail, logger *slog.Logger) (*GormSnapshotRepository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db is required")
	}
	if trail == nil {
		return nil, errs.NewValueIsRequiredError("trail is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GormSnapshotRepository{
		db:     db,
		trail:  trail,
		logger: logger.With("component", "snapshotrepo"),
	}, nil
}

// Migrate creates or updates the snapshot tables.
func (r *GormSnapshotRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&FacilityDTO{},
		&ProductDTO{},
		&LocationDTO{},
		&OrderDTO{},
		&OrderItemDTO{},
	)
}

// Save atomically replaces the stored snapshot with the given state.
func (r *GormSnapshotRepository) Save(ctx context.Context, snapshot *ports.Snapshot) error {
	if snapshot == nil {
		return errs.NewValueIsRequiredError("snapshot is required")
	}
	if err := snapshot.Registry.Validate(); err != nil {
		return err
	}
	if err := snapshot.Facility.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&OrderItemDTO{}, &OrderDTO{}, &LocationDTO{}, &ProductDTO{}, &FacilityDTO{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&FacilityDTO{ID: facilityRowID, Name: snapshot.Facility.Name()}).Error; err != nil {
			return err
		}

		if err := saveProducts(tx, snapshot.Registry.Products()); err != nil {
			return err
		}
		if err := saveLocations(tx, snapshot.Facility.Locations()); err != nil {
			return err
		}
		return saveOrders(tx, snapshot.Orders)
	})
	if err != nil {
		return err
	}

	r.logger.Info("snapshot saved",
		"products", snapshot.Registry.Len(),
		"locations", len(snapshot.Facility.Locations()),
		"orders", len(snapshot.Orders))
	return nil
}

// Load retrieves the stored snapshot and rebuilds the domain aggregates.
func (r *GormSnapshotRepository) Load(ctx context.Context) (*ports.Snapshot, error) {
	var facilityDTO FacilityDTO
	if err := r.db.WithContext(ctx).First(&facilityDTO, "id = ?", facilityRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("snapshot", "current")
		}
		return nil, err
	}

	registry, err := r.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	facility, err := r.loadFacility(ctx, facilityDTO.Name)
	if err != nil {
		return nil, err
	}

	orders, err := r.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.Info("snapshot loaded",
		"products", registry.Len(),
		"locations", len(facility.Locations()),
		"orders", len(orders))

	return &ports.Snapshot{Registry: registry, Facility: facility, Orders: orders}, nil
}

func saveProducts(tx *gorm.DB, products []product.Product) error {
	for i, p := range products {
		cols, err := productToColumns(p)
		if err != nil {
			return err
		}
		if err := tx.Create(&ProductDTO{Position: i, productColumns: cols}).Error; err != nil {
			return err
		}
	}
	return nil
}

func saveLocations(tx *gorm.DB, locations []storage.Location) error {
	for i, loc := range locations {
		dto, err := locationToDTO(i, loc)
		if err != nil {
			return err
		}
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}

func saveOrders(tx *gorm.DB, orders []*order.Order) error {
	for i, aggregate := range orders {
		if err := aggregate.Validate(); err != nil {
			return err
		}

		dto, itemDTOs, err := orderToDTO(i, aggregate)
		if err != nil {
			return err
		}
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		for j := range itemDTOs {
			if err := tx.Create(&itemDTOs[j]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *GormSnapshotRepository) loadRegistry(ctx context.Context) (*inventory.Registry, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := columnsToProduct(dto.productColumns)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return inventory.RestoreRegistry(products, r.logger)
}

func (r *GormSnapshotRepository) loadFacility(ctx context.Context, name string) (*storage.Facility, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]storage.Location, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := dtoToLocation(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return storage.RestoreFacility(name, locations)
}

func (r *GormSnapshotRepository) loadOrders(ctx context.Context) ([]*order.Order, error) {
	var orderDTOs []OrderDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&orderDTOs).Error; err != nil {
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).Order("order_id, position").Find(&itemDTOs).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]product.Product)
	for _, dto := range itemDTOs {
		item, err := columnsToProduct(dto.productColumns)
		if err != nil {
			return nil, err
		}
		itemsByOrder[dto.OrderID] = append(itemsByOrder[dto.OrderID], item)
	}

	orders := make([]*order.Order, 0, len(orderDTOs))
	for _, dto := range orderDTOs {
		status, err := order.StatusFromString(dto.Status)
		if err != nil {
			return nil, err
		}

		aggregate, err := order.RestoreOrder(
			dto.ID, dto.Customer,
			itemsByOrder[dto.ID],
			status, dto.CreatedAt, r.trail,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
