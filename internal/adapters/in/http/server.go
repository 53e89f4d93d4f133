// Package http exposes the warehouse operations over a JSON API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerProductHandler commands.RegisterProductCommandHandler
	removeProductHandler   commands.RemoveProductCommandHandler
	updatePriceHandler     commands.UpdatePriceCommandHandler
	addLocationHandler     commands.AddLocationCommandHandler
	placeProductHandler    commands.PlaceProductCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	pickOrderHandler       commands.PickOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	saveSnapshotHandler    commands.SaveSnapshotCommandHandler

	// Query handlers
	inventoryReportHandler  queries.GetInventoryReportQueryHandler
	expiringProductsHandler queries.GetExpiringProductsQueryHandler
	storageCostHandler      queries.GetStorageCostQueryHandler
	freeCapacityHandler     queries.GetFreeCapacityQueryHandler
	auditTrailHandler       queries.GetAuditTrailQueryHandler
	ordersHandler           queries.GetOrdersQueryHandler
	orderSummaryHandler     queries.GetOrderSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerProductHandler commands.RegisterProductCommandHandler,
	removeProductHandler commands.RemoveProductCommandHandler,
	updatePriceHandler commands.UpdatePriceCommandHandler,
	addLocationHandler commands.AddLocationCommandHandler,
	placeProductHandler commands.PlaceProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	pickOrderHandler commands.PickOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	saveSnapshotHandler commands.SaveSnapshotCommandHandler,
	inventoryReportHandler queries.GetInventoryReportQueryHandler,
	expiringProductsHandler queries.GetExpiringProductsQueryHandler,
	storageCostHandler queries.GetStorageCostQueryHandler,
	freeCapacityHandler queries.GetFreeCapacityQueryHandler,
	auditTrailHandler queries.GetAuditTrailQueryHandler,
	ordersHandler queries.GetOrdersQueryHandler,
	orderSummaryHandler queries.GetOrderSummaryQueryHandler,
) *Server {
	return &Server{
		registerProductHandler:  registerProductHandler,
		removeProductHandler:    removeProductHandler,
		updatePriceHandler:      updatePriceHandler,
		addLocationHandler:      addLocationHandler,
		placeProductHandler:     placeProductHandler,
		createOrderHandler:      createOrderHandler,
		pickOrderHandler:        pickOrderHandler,
		shipOrderHandler:        shipOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		saveSnapshotHandler:     saveSnapshotHandler,
		inventoryReportHandler:  inventoryReportHandler,
		expiringProductsHandler: expiringProductsHandler,
		storageCostHandler:      storageCostHandler,
		freeCapacityHandler:     freeCapacityHandler,
		auditTrailHandler:       auditTrailHandler,
		ordersHandler:           ordersHandler,
		orderSummaryHandler:     orderSummaryHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.RegisterProduct)
	api.DELETE("/products/:productId", s.RemoveProduct)
	api.PUT("/products/:productId/price", s.UpdatePrice)
	api.POST("/products/:productId/placement", s.PlaceProduct)

	api.GET("/inventory/report", s.GetInventoryReport)
	api.GET("/inventory/expiring", s.GetExpiringProducts)
	api.GET("/inventory/storage-cost", s.GetStorageCost)

	api.POST("/locations", s.AddLocation)
	api.GET("/locations/capacity", s.GetFreeCapacity)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/pick", s.PickOrder)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/audit", s.GetAuditTrail)
	api.POST("/snapshot", s.SaveSnapshot)
}

// RegisterProduct handles POST /api/v1/products.
// An omitted id is generated server side.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.ID == "" {
		body.ID = uuid.NewString()
	}

	entry, err := productFromRequest(body)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterProductCommand(entry)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Product already registered",
		})
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": body.ID})
}

// RemoveProduct handles DELETE /api/v1/products/:productId.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	cmd, err := commands.NewRemoveProductCommand(ctx.Param("productId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePrice handles PUT /api/v1/products/:productId/price.
func (s *Server) UpdatePrice(ctx echo.Context) error {
	var body UpdatePrice
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePriceCommand(ctx.Param("productId"), body.NewPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceProduct handles POST /api/v1/products/:productId/placement.
func (s *Server) PlaceProduct(ctx echo.Context) error {
	productID := ctx.Param("productId")

	cmd, err := commands.NewPlaceProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	locationID, err := s.placeProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Placement{ProductID: productID, LocationID: locationID})
}

// GetInventoryReport handles GET /api/v1/inventory/report.
func (s *Server) GetInventoryReport(ctx echo.Context) error {
	report, err := s.inventoryReportHandler.Handle(
		ctx.Request().Context(), queries.NewGetInventoryReportQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, report)
}

// GetExpiringProducts handles GET /api/v1/inventory/expiring.
func (s *Server) GetExpiringProducts(ctx echo.Context) error {
	warnings, err := s.expiringProductsHandler.Handle(
		ctx.Request().Context(), queries.NewGetExpiringProductsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, warnings)
}

// GetStorageCost handles GET /api/v1/inventory/storage-cost?days=N.
func (s *Server) GetStorageCost(ctx echo.Context) error {
	days, err := strconv.Atoi(ctx.QueryParam("days"))
	if err != nil {
		return badRequest(ctx, "days must be an integer")
	}

	query, err := queries.NewGetStorageCostQuery(days)
	if err != nil {
		return respondError(ctx, err)
	}

	cost, err := s.storageCostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"cost": cost})
}

// AddLocation handles POST /api/v1/locations.
// An omitted id is generated server side.
func (s *Server) AddLocation(ctx echo.Context) error {
	var body NewLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.ID == "" {
		body.ID = uuid.NewString()
	}

	loc, err := locationFromRequest(body)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddLocationCommand(loc)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": body.ID})
}

// GetFreeCapacity handles GET /api/v1/locations/capacity.
func (s *Server) GetFreeCapacity(ctx echo.Context) error {
	response, err := s.freeCapacityHandler.Handle(
		ctx.Request().Context(), queries.NewGetFreeCapacityQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
// An omitted id is generated server side.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.ID == "" {
		body.ID = uuid.NewString()
	}

	cmd, err := commands.NewCreateOrderCommand(body.ID, body.Customer, body.ProductIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": body.ID})
}

// GetOrders handles GET /api/v1/orders?status=S.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if name := ctx.QueryParam("status"); name != "" {
		status, err := order.StatusFromString(name)
		if err != nil {
			return respondError(ctx, err)
		}
		if query, err = queries.NewGetOrdersQueryWithStatus(status); err != nil {
			return respondError(ctx, err)
		}
	}

	summaries, err := s.ordersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaries)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderSummaryQuery(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.orderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PickOrder handles POST /api/v1/orders/:orderId/pick.
func (s *Server) PickOrder(ctx echo.Context) error {
	cmd, err := commands.NewPickOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.pickOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
// An omitted shipment id is generated server side.
func (s *Server) ShipOrder(ctx echo.Context) error {
	var body ShipOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.ShipmentID == "" {
		body.ShipmentID = uuid.NewString()
	}

	cmd, err := commands.NewShipOrderCommand(ctx.Param("orderId"), body.ShipmentID, body.Carrier)
	if err != nil {
		return respondError(ctx, err)
	}

	trackingCode, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Shipped{ShipmentID: body.ShipmentID, TrackingCode: trackingCode})
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeliverOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var body CancelOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(ctx.Param("orderId"), body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAuditTrail handles GET /api/v1/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	text, err := s.auditTrailHandler.Handle(
		ctx.Request().Context(), queries.NewGetAuditTrailQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, text)
}

// SaveSnapshot handles POST /api/v1/snapshot.
func (s *Server) SaveSnapshot(ctx echo.Context) error {
	if err := s.saveSnapshotHandler.Handle(
		ctx.Request().Context(), commands.NewSaveSnapshotCommand()); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// productFromRequest builds a catalog entry from the request body.
func productFromRequest(body NewProduct) (product.Product, error) {
	switch body.Category {
	case product.CategoryPerishable.String():
		return product.NewPerishable(
			body.ID, body.Name,
			body.BasePrice, body.Volume, body.Weight,
			body.ExpiryDate, body.RequiredTemperature,
		)
	case product.CategoryDurable.String():
		return product.NewDurable(
			body.ID, body.Name,
			body.BasePrice, body.Volume, body.Weight,
			body.MaterialType, body.Fragile,
		)
	default:
		return nil, errs.NewValueIsInvalidError("category is invalid")
	}
}

// locationFromRequest builds a storage location from the request body.
func locationFromRequest(body NewLocation) (storage.Location, error) {
	switch body.Kind {
	case "Shelf":
		return storage.NewShelf(body.ID, body.Capacity, body.MaxHeight)
	case "TemperatureUnit":
		return storage.NewTemperatureUnit(body.ID, body.Capacity, body.MinTemp, body.MaxTemp)
	default:
		return nil, errs.NewValueIsInvalidError("kind is invalid")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNoSuitableLocation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
