package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the kitchen API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	changeItemStatusHandler  commands.ChangeItemStatusCommandHandler
	assignStationHandler     commands.AssignStationCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler

	// Query handlers
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeItemStatusHandler commands.ChangeItemStatusCommandHandler,
	assignStationHandler commands.AssignStationCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		changeItemStatusHandler:  changeItemStatusHandler,
		assignStationHandler:     assignStationHandler,
		cancelOrderHandler:       cancelOrderHandler,
		completeOrderHandler:     completeOrderHandler,
		getKitchenQueueHandler:   getKitchenQueueHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/queue", s.GetKitchenQueue)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/items/:itemId/status", s.ChangeItemStatus)
	api.POST("/orders/:id/assign", s.AssignStation)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - accepts a new kitchen order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id: "+err.Error())
	}

	var tableID *kernel.UUID
	if req.TableID != nil {
		tID, tableErr := kernel.UUIDFromString(*req.TableID)
		if tableErr != nil {
			return badRequest(ctx, "Invalid table_id: "+tableErr.Error())
		}
		tableID = &tID
	}

	items := make([]commands.OrderItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		recipeID, recipeErr := kernel.UUIDFromString(item.RecipeID)
		if recipeErr != nil {
			return badRequest(ctx, "Invalid recipe_id: "+recipeErr.Error())
		}
		items = append(items, commands.OrderItemSpec{
			RecipeID: recipeID,
			Quantity: item.Quantity,
			Note:     item.Note,
		})
	}

	priority, err := order.NewPriority(req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		tableID,
		items,
		priority,
		req.SpecialInstructions,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeStatus
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ChangeItemStatus handles POST /api/v1/orders/:id/items/:itemId/status -
// reports preparation progress for one item of an order.
func (s *Server) ChangeItemStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	var req ChangeItemStatus
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemStatusCommand(orderID, itemID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeItemStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// AssignStation handles POST /api/v1/orders/:id/assign - routes an order to a station.
func (s *Server) AssignStation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AssignStation
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stationID, err := kernel.UUIDFromString(req.StationID)
	if err != nil {
		return badRequest(ctx, "Invalid station_id: "+err.Error())
	}

	cmd, err := commands.NewAssignStationCommand(orderID, stationID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.assignStationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order with a reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req CancelOrder
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - closes out a
// served order after verifying every item is done.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetKitchenQueue handles GET /api/v1/orders/queue - lists all active orders
// in working order.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	query := queries.NewGetKitchenQueueQuery()

	entries, err := s.getKitchenQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queueFromQueryResponse(entries))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(resp))
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors onto HTTP status codes. Validation failures
// are client mistakes, missing objects are 404, rejected business rules are
// 422, and anything unrecognized is a server fault.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
