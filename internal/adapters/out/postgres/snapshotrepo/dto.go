// Package snapshotrepo provides data transfer objects and mapping functions
// for whole-warehouse snapshot persistence. It implements the repository
// pattern over GORM, converting between domain aggregates and their
// relational representations.
package snapshotrepo

import (
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/storage"
)

const (
	categoryPerishable = "Perishable"
	categoryDurable    = "Durable"

	locationKindShelf           = "Shelf"
	locationKindTemperatureUnit = "TemperatureUnit"
)

// productColumns is the flattened column set shared by every persisted
// product, whether it lives in the catalog or inside an order. Category
// selects which of the optional columns are meaningful.
type productColumns struct {
	ProductID string `gorm:"index"`
	Name      string
	BasePrice float64
	Volume    float64
	Weight    float64
	Category  string

	Expiry              *time.Time
	RequiredTemperature *int
	Spoiled             *bool

	MaterialType *string
	Fragile      *bool
}

// ProductDTO represents one catalog entry in the registry.
// Position preserves registry insertion order across a round trip.
type ProductDTO struct {
	Position       int `gorm:"primaryKey;autoIncrement:false"`
	productColumns `gorm:"embedded"`
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "catalog_products"
}

// LocationDTO represents one storage location of the facility.
// Position is the primary key because location identifiers may repeat.
type LocationDTO struct {
	Position   int `gorm:"primaryKey;autoIncrement:false"`
	LocationID string
	Kind       string
	Capacity   float64

	MaxHeight *float64
	MinTemp   *int
	MaxTemp   *int

	CurrentLoad float64
	ItemCount   int
	LastUpdated time.Time
}

// TableName specifies the database table name for storage locations.
func (LocationDTO) TableName() string {
	return "storage_locations"
}

// FacilityDTO represents the single facility row of a snapshot.
type FacilityDTO struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for the facility.
func (FacilityDTO) TableName() string {
	return "facility"
}

// OrderDTO represents one persisted order.
// Position preserves creation order across a round trip.
type OrderDTO struct {
	ID        string `gorm:"primaryKey"`
	Position  int    `gorm:"index"`
	Customer  string
	Status    string
	CreatedAt time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one item of a persisted order. Items carry full
// product columns rather than a catalog reference, so an order round-trips
// even after its products were removed from the registry.
type OrderItemDTO struct {
	OrderID        string `gorm:"primaryKey"`
	Position       int    `gorm:"primaryKey;autoIncrement:false"`
	productColumns `gorm:"embedded"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// productToColumns flattens a catalog entry into its column set.
func productToColumns(p product.Product) (productColumns, error) {
	cols := productColumns{
		ProductID: p.ID(),
		Name:      p.Name(),
		BasePrice: p.BasePrice(),
		Volume:    p.Volume(),
		Weight:    p.Weight(),
	}

	switch entry := p.(type) {
	case *product.Perishable:
		expiry := entry.Expiry()
		reqTemp := entry.RequiredTemperature()
		spoiled := entry.IsSpoiled()
		cols.Category = categoryPerishable
		cols.Expiry = &expiry
		cols.RequiredTemperature = &reqTemp
		cols.Spoiled = &spoiled
	case *product.Durable:
		material := entry.Material()
		fragile := entry.IsFragile()
		cols.Category = categoryDurable
		cols.MaterialType = &material
		cols.Fragile = &fragile
	default:
		return productColumns{}, fmt.Errorf("unsupported product type %T", p)
	}

	return cols, nil
}

// columnsToProduct reconstructs a catalog entry through its restore
// constructor, so loaded entries are fully validated.
func columnsToProduct(cols productColumns) (product.Product, error) {
	switch cols.Category {
	case categoryPerishable:
		if cols.Expiry == nil || cols.RequiredTemperature == nil || cols.Spoiled == nil {
			return nil, fmt.Errorf("perishable row %s is missing perishable columns", cols.ProductID)
		}
		return product.RestorePerishable(
			cols.ProductID, cols.Name,
			cols.BasePrice, cols.Volume, cols.Weight,
			*cols.Expiry, *cols.RequiredTemperature, *cols.Spoiled,
		)
	case categoryDurable:
		if cols.MaterialType == nil || cols.Fragile == nil {
			return nil, fmt.Errorf("durable row %s is missing durable columns", cols.ProductID)
		}
		return product.RestoreDurable(
			cols.ProductID, cols.Name,
			cols.BasePrice, cols.Volume, cols.Weight,
			*cols.MaterialType, *cols.Fragile,
		)
	default:
		return nil, fmt.Errorf("unsupported product category %q", cols.Category)
	}
}

// locationToDTO flattens a storage location into its row representation.
func locationToDTO(position int, loc storage.Location) (LocationDTO, error) {
	dto := LocationDTO{
		Position:    position,
		LocationID:  loc.ID(),
		Capacity:    loc.Capacity(),
		CurrentLoad: loc.CurrentLoad(),
		ItemCount:   loc.ItemCount(),
		LastUpdated: loc.LastUpdated(),
	}

	switch location := loc.(type) {
	case *storage.Shelf:
		maxHeight := location.MaxHeight()
		dto.Kind = locationKindShelf
		dto.MaxHeight = &maxHeight
	case *storage.TemperatureUnit:
		minTemp := location.MinTemp()
		maxTemp := location.MaxTemp()
		dto.Kind = locationKindTemperatureUnit
		dto.MinTemp = &minTemp
		dto.MaxTemp = &maxTemp
	default:
		return LocationDTO{}, fmt.Errorf("unsupported location type %T", loc)
	}

	return dto, nil
}

// dtoToLocation reconstructs a storage location through its restore
// constructor.
func dtoToLocation(dto LocationDTO) (storage.Location, error) {
	switch dto.Kind {
	case locationKindShelf:
		if dto.MaxHeight == nil {
			return nil, fmt.Errorf("shelf row %s is missing max height", dto.LocationID)
		}
		return storage.RestoreShelf(
			dto.LocationID, dto.Capacity, *dto.MaxHeight,
			dto.CurrentLoad, dto.ItemCount, dto.LastUpdated,
		)
	case locationKindTemperatureUnit:
		if dto.MinTemp == nil || dto.MaxTemp == nil {
			return nil, fmt.Errorf("temperature unit row %s is missing temperature range", dto.LocationID)
		}
		return storage.RestoreTemperatureUnit(
			dto.LocationID, dto.Capacity, *dto.MinTemp, *dto.MaxTemp,
			dto.CurrentLoad, dto.ItemCount, dto.LastUpdated,
		)
	default:
		return nil, fmt.Errorf("unsupported location kind %q", dto.Kind)
	}
}

// orderToDTO flattens an order and its items into row representations.
func orderToDTO(position int, aggregate *order.Order) (OrderDTO, []OrderItemDTO, error) {
	dto := OrderDTO{
		ID:        aggregate.ID(),
		Position:  position,
		Customer:  aggregate.Customer(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		cols, err := productToColumns(item)
		if err != nil {
			return OrderDTO{}, nil, err
		}
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:        aggregate.ID(),
			Position:       i,
			productColumns: cols,
		})
	}

	return dto, itemDTOs, nil
}
