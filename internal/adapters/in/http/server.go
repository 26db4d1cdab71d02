package http

import (
	"errors"
	"net/http"

	"giftmarket/internal/core/application/usecases/commands"
	"giftmarket/internal/core/application/usecases/queries"
	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/scan"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	acceptRequestHandler    commands.AcceptRequestCommandHandler
	declineRequestHandler   commands.DeclineRequestCommandHandler
	markReadyHandler        commands.MarkReadyForDispatchCommandHandler
	pinLocationHandler      commands.PinDeliveryLocationCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	finalizeHandoverHandler commands.FinalizeHandoverCommandHandler

	// Query handlers
	quoteTotalsHandler     queries.QuoteTotalsQueryHandler
	verifyTokenHandler     queries.VerifyTokenQueryHandler
	walletViewHandler      queries.WalletViewQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler

	scanListener *scan.Listener
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the scan listener backing the verify endpoint.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptRequestHandler commands.AcceptRequestCommandHandler,
	declineRequestHandler commands.DeclineRequestCommandHandler,
	markReadyHandler commands.MarkReadyForDispatchCommandHandler,
	pinLocationHandler commands.PinDeliveryLocationCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	finalizeHandoverHandler commands.FinalizeHandoverCommandHandler,
	quoteTotalsHandler queries.QuoteTotalsQueryHandler,
	verifyTokenHandler queries.VerifyTokenQueryHandler,
	walletViewHandler queries.WalletViewQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	scanListener *scan.Listener,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptRequestHandler:    acceptRequestHandler,
		declineRequestHandler:   declineRequestHandler,
		markReadyHandler:        markReadyHandler,
		pinLocationHandler:      pinLocationHandler,
		assignDriverHandler:     assignDriverHandler,
		finalizeHandoverHandler: finalizeHandoverHandler,
		quoteTotalsHandler:      quoteTotalsHandler,
		verifyTokenHandler:      verifyTokenHandler,
		walletViewHandler:       walletViewHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		scanListener:            scanListener,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/quote", s.QuoteTotals)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/accept", s.AcceptRequest)
	api.POST("/orders/:id/decline", s.DeclineRequest)
	api.POST("/orders/:id/ready", s.MarkReadyForDispatch)
	api.POST("/orders/:id/pin", s.PinDeliveryLocation)
	api.POST("/orders/:id/driver", s.AssignDriver)
	api.POST("/orders/:id/finalize", s.FinalizeHandover)

	api.POST("/verify", s.VerifyToken)
	api.POST("/scan/feed", s.ScanFeed)

	api.GET("/shops/:id/wallet", s.GetWallet)
	api.GET("/shops/:id/orders", s.GetActiveOrders)

	e.GET("/health", s.Health)
}

// QuoteTotals handles POST /api/v1/quote - prices a cart with the
// checkout fee schedule without creating anything.
func (s *Server) QuoteTotals(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := buildQuoteTotalsQuery(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	totals, err := s.quoteTotalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, totalsDTO(totals))
}

// CreateOrder handles POST /api/v1/orders - registers a checked-out order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildCreateOrderCommand(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse(created))
}

// AcceptRequest handles POST /api/v1/orders/:id/accept - the shop accepts
// an escrowed make-to-order request.
func (s *Server) AcceptRequest(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptRequestCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineRequest handles POST /api/v1/orders/:id/decline - the shop turns
// down an escrowed request and the buyer is refunded.
func (s *Server) DeclineRequest(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeclineRequestCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.declineRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReadyForDispatch handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReadyForDispatch(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkReadyForDispatchCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PinDeliveryLocation handles POST /api/v1/orders/:id/pin - the buyer
// re-pins the doorstep coordinate before dispatch.
func (s *Server) PinDeliveryLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CoordinateDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPinDeliveryLocationCommand(orderID, location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.pinLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/driver - binds the courier
// descriptor and dispatches the order.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driver, err := order.NewDriverAssignment(req.Name, req.Vehicle, req.Plate, req.Phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driver)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeHandover handles POST /api/v1/orders/:id/finalize - atomically
// closes the order and releases escrowed funds.
func (s *Server) FinalizeHandover(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req FinalizeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verification := order.VerifiedNone
	if req.Modality != "" {
		verification, err = order.VerificationMethodFromModality(req.Modality)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	cmd, err := commands.NewFinalizeHandoverCommand(orderID, verification, req.PhotoRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.finalizeHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyToken handles POST /api/v1/verify - matches a presented token and
// returns the order for display without mutating it. With modality "scan"
// and no token in the body, the call waits for the next scanner read; the
// wait is bounded and resolves to a timeout error, never a hang.
func (s *Server) VerifyToken(ctx echo.Context) error {
	var req VerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	raw := req.Token
	if raw == "" && req.Modality == "scan" {
		read, err := s.scanListener.Await(ctx.Request().Context())
		if err != nil {
			return errorResponse(ctx, err)
		}
		raw = read
	}

	query, err := queries.NewVerifyTokenQuery(raw, req.Modality)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.verifyTokenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verifyResponse(result))
}

// ScanFeed handles POST /api/v1/scan/feed - the scanner device pushes a
// raw machine read. A read with no verification in progress is dropped.
func (s *Server) ScanFeed(ctx echo.Context) error {
	var req ScanFeedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.scanListener.Push(req.Raw)
	return ctx.NoContent(http.StatusAccepted)
}

// GetWallet handles GET /api/v1/shops/:id/wallet - derived balances.
func (s *Server) GetWallet(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewWalletViewQuery(shopID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.walletViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WalletResponse{
		ShopID:    view.ShopID.String(),
		Pending:   view.Pending.String(),
		Available: view.Available.String(),
	})
}

// GetActiveOrders handles GET /api/v1/shops/:id/orders - open orders for
// the shop dashboard.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(shopID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:        o.OrderID.String(),
			BuyerName:      o.BuyerName,
			Status:         o.Status.String(),
			DeliveryMethod: o.DeliveryMethod.String(),
			Total:          o.Total.String(),
			ScheduledReady: o.ScheduledReady,
			CreatedAt:      o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func buildCreateOrderCommand(req NewOrderRequest) (commands.CreateOrderCommand, error) {
	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	shopLocation, err := kernel.NewGeoPoint(req.ShopLocation.Lat, req.ShopLocation.Lon)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	method, err := kernel.DeliveryMethodFromString(req.DeliveryMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items, err := buildLineItems(req.Items)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	deliveryLocation, err := buildOptionalPin(req.DeliveryLocation)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerID, req.BuyerName, shopID, shopLocation,
		items, method, deliveryLocation, req.ScheduledReady,
	)
}

func buildQuoteTotalsQuery(req QuoteRequest) (queries.QuoteTotalsQuery, error) {
	shopLocation, err := kernel.NewGeoPoint(req.ShopLocation.Lat, req.ShopLocation.Lon)
	if err != nil {
		return queries.QuoteTotalsQuery{}, err
	}
	method, err := kernel.DeliveryMethodFromString(req.DeliveryMethod)
	if err != nil {
		return queries.QuoteTotalsQuery{}, err
	}
	items, err := buildLineItems(req.Items)
	if err != nil {
		return queries.QuoteTotalsQuery{}, err
	}
	deliveryLocation, err := buildOptionalPin(req.DeliveryLocation)
	if err != nil {
		return queries.QuoteTotalsQuery{}, err
	}

	return queries.NewQuoteTotalsQuery(shopLocation, items, method, deliveryLocation)
}

func buildLineItems(dtos []LineItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, len(dtos))
	for i, dto := range dtos {
		productID, err := kernel.UUIDFromString(dto.ProductID)
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoneyFromFloat(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(productID, dto.Name, dto.Quantity, unitPrice, dto.MakeToOrder)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func buildOptionalPin(dto *CoordinateDTO) (*kernel.GeoPoint, error) {
	if dto == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors onto HTTP statuses: validation
// failures to 400, unknown objects to 404, lifecycle conflicts (illegal
// transition, already collected, lost race) to 409, an expired scan wait
// to 408. Anything unrecognized is a 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyCollected),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, scan.ErrScanTimedOut):
		status = http.StatusRequestTimeout
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
