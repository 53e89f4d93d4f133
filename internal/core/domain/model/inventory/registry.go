// Package inventory contains the registry that owns the product catalog.
//
// The registry keys catalog entries by identifier, keeps a per-category count
// cache in lock-step with inserts and removals, and computes aggregate values
// over the catalog. Iteration order is insertion order.
package inventory

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

// ErrRegistryIsNotConstructed is returned when a Registry instance was not
// created through the NewRegistry constructor.
var ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry constructor")

// Registry owns the product catalog of one warehouse.
//
// Entries are registered into exactly one registry and never shared; removal
// transfers ownership back to the caller. Lookups signal absence with a nil
// result or a false return rather than an error, so callers must check.
//
// The registry emits informational log lines for mutations. These are
// operational logs for the process console, not part of the audit trail.
//
// Safe for concurrent use; request handlers and background jobs share it.
type Registry struct {
	mu            sync.Mutex
	products      map[string]product.Product
	ids           []string // insertion order
	categoryCount map[product.Category]int
	logger        *slog.Logger

	guard guard.ConstructorGuard
}

// NewRegistry creates an empty registry.
// A nil logger falls back to slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		products: make(map[string]product.Product),
		categoryCount: map[product.Category]int{
			product.CategoryPerishable: 0,
			product.CategoryDurable:    0,
		},
		logger: logger.With("component", "inventory"),
		guard:  guard.NewConstructorGuard(),
	}
}

// RestoreRegistry reconstructs a registry from persisted entries, preserving
// their original insertion order. Returns an error if any entry is invalid or
// duplicated.
func RestoreRegistry(products []product.Product, logger *slog.Logger) (*Registry, error) {
	registry := NewRegistry(logger)

	for _, p := range products {
		if p == nil {
			return nil, product.ErrProductIsNotConstructed
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := registry.products[p.ID()]; exists {
			return nil, fmt.Errorf("duplicate product ID %q in snapshot", p.ID())
		}

		registry.products[p.ID()] = p
		registry.ids = append(registry.ids, p.ID())
		registry.categoryCount[p.Category()]++
	}

	return registry, nil
}

// Add registers a catalog entry.
// Returns false if the identifier is already present or the entry is invalid;
// on success the matching category count is incremented.
func (r *Registry) Add(p product.Product) bool {
	if p == nil || p.Validate() != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[p.ID()]; exists {
		r.logger.Warn("add failed: product ID already exists", "productId", p.ID())
		return false
	}

	r.products[p.ID()] = p
	r.ids = append(r.ids, p.ID())
	r.categoryCount[p.Category()]++

	r.logger.Info("product added", "productId", p.ID(), "name", p.Name())
	return true
}

// Remove deletes the entry with the given identifier.
// Returns false if the identifier is not present; on success the matching
// category count is decremented and ownership transfers back to the caller.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.products[id]
	if !exists {
		r.logger.Warn("remove failed: product not found", "productId", id)
		return false
	}

	delete(r.products, id)
	for i, storedID := range r.ids {
		if storedID == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	r.categoryCount[p.Category()]--

	r.logger.Info("product removed", "productId", id, "name", p.Name())
	return true
}

// Get returns the entry with the given identifier, or nil if absent.
func (r *Registry) Get(id string) product.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id]
}

// UpdatePrice mutates the base price of an entry in place.
// Returns false if the entry is not found or the new price is rejected by the
// entry's own validation.
func (r *Registry) UpdatePrice(id string, newPrice float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.products[id]
	if p == nil {
		r.logger.Warn("price update failed: product not found", "productId", id)
		return false
	}

	oldPrice := p.BasePrice()
	if err := p.ChangeBasePrice(newPrice); err != nil {
		r.logger.Warn("price update failed", "productId", id, "error", err)
		return false
	}

	r.logger.Info("price updated", "productId", id, "oldPrice", oldPrice, "newPrice", newPrice)
	return true
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products)
}

// CategoryCount returns the cached count of entries in the given category.
func (r *Registry) CategoryCount(c product.Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categoryCount[c]
}

// Products returns the registered entries in insertion order.
// The slice is a copy; the entries themselves are shared references.
func (r *Registry) Products() []product.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]product.Product, 0, len(r.ids))
	for _, id := range r.ids {
		products = append(products, r.products[id])
	}
	return products
}

// TotalValue returns the sum of base prices across all entries,
// rounded to 2 decimal places.
func (r *Registry) TotalValue() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, id := range r.ids {
		total += r.products[id].BasePrice()
	}
	return math.Round(total*100) / 100
}

// ExpiringWarnings returns one warning string per perishable entry whose
// computed freshness status is CRITICAL or EXPIRED, in insertion order.
func (r *Registry) ExpiringWarnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	warnings := make([]string, 0)
	for _, id := range r.ids {
		p, ok := r.products[id].(*product.Perishable)
		if !ok {
			continue
		}

		status := p.CheckStatus()
		if status == product.Critical || status == product.Expired {
			warnings = append(warnings, fmt.Sprintf("WARNING: %s is %s", p.Name(), status))
		}
	}
	return warnings
}

// ProjectedStorageCost returns the sum of each entry's polymorphic storage
// cost for the given number of days.
func (r *Registry) ProjectedStorageCost(days int) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, id := range r.ids {
		total += r.products[id].StorageCost(days)
	}

	r.logger.Info("projected storage cost computed", "days", days, "cost", total)
	return total
}

// GenerateReport returns a formatted inventory summary: header with the
// current date, totals per category, and one description line per entry in
// insertion order.
func (r *Registry) GenerateReport() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "WAREHOUSE INVENTORY REPORT - %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total Items: %d\n", len(r.products))
	fmt.Fprintf(&b, "Perishables: %d\n", r.categoryCount[product.CategoryPerishable])
	fmt.Fprintf(&b, "Durables:    %d\n", r.categoryCount[product.CategoryDurable])
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	for _, id := range r.ids {
		fmt.Fprintln(&b, r.products[id].Describe())
	}
	fmt.Fprintln(&b, rule)

	return b.String()
}

// Validate ensures the registry was created through NewRegistry.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}
