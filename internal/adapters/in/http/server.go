// Package http exposes the console's REST facade. Every route maps one to one
// onto a command or query; the handlers translate wire requests into validated
// commands and domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"console/internal/core/application/usecases/commands"
	"console/internal/core/application/usecases/queries"
	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/core/ports"
	"console/internal/pkg/errs"
	"console/internal/pkg/inflight"
	"console/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitPaymentHandler        commands.SubmitPaymentCommandHandler
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	advanceOrderHandler         commands.AdvanceOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderActionsHandler queries.GetOrderActionsQueryHandler

	sessions   ports.SessionStore
	sessionTTL time.Duration
	metrics    *metrics.WorkflowMetrics
}

// NewServer creates the REST facade with the required handlers.
func NewServer(
	submitPaymentHandler commands.SubmitPaymentCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderActionsHandler queries.GetOrderActionsQueryHandler,
	sessions ports.SessionStore,
	sessionTTL time.Duration,
	workflowMetrics *metrics.WorkflowMetrics,
) *Server {
	return &Server{
		submitPaymentHandler:        submitPaymentHandler,
		createDeliveryHandler:       createDeliveryHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		advanceOrderHandler:         advanceOrderHandler,
		getOrderHandler:             getOrderHandler,
		getOrderActionsHandler:      getOrderActionsHandler,
		sessions:                    sessions,
		sessionTTL:                  sessionTTL,
		metrics:                     workflowMetrics,
	}
}

// RegisterRoutes mounts all facade routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/actions", s.GetOrderActions)
	api.POST("/orders/:id/payment", s.SubmitPayment)
	api.POST("/orders/:id/delivery", s.CreateDelivery)
	api.PUT("/orders/:id/delivery/status", s.UpdateDeliveryStatus)
	api.PUT("/orders/:id/status", s.AdvanceOrder)

	api.POST("/session", s.StartSession)
	api.DELETE("/session", s.EndSession)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// GetOrder handles GET /api/v1/orders/:id - refreshes and returns one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOrder(ctx, aggregate)
}

// GetOrderActions handles GET /api/v1/orders/:id/actions - the audit history.
func (s *Server) GetOrderActions(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderActionsQuery(orderID, 0)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getOrderActionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseEnvelope{
		Success: true,
		Data:    toActionEntryResponses(entries),
	})
}

// SubmitPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) SubmitPayment(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req paymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSubmitPaymentCommand(orderID, order.PaymentType(req.PaymentType), req.PaymentPlanID)
	if err != nil {
		s.metrics.ObserveAction("payment", "rejected")
		return respondError(ctx, err)
	}

	updated, err := s.submitPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.ObserveAction("payment", outcomeOf(err))
		return respondError(ctx, err)
	}

	s.metrics.ObserveAction("payment", "ok")
	return respondOrder(ctx, updated)
}

// CreateDelivery handles POST /api/v1/orders/:id/delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req deliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, req.EmployeeID, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		s.metrics.ObserveAction("delivery_create", "rejected")
		return respondError(ctx, err)
	}

	updated, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.ObserveAction("delivery_create", outcomeOf(err))
		return respondError(ctx, err)
	}

	s.metrics.ObserveAction("delivery_create", "ok")
	return respondOrder(ctx, updated)
}

// UpdateDeliveryStatus handles PUT /api/v1/orders/:id/delivery/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req deliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, order.DeliveryStatus(req.Status))
	if err != nil {
		s.metrics.ObserveAction("delivery_status", "rejected")
		return respondError(ctx, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.ObserveAction("delivery_status", outcomeOf(err))
		return respondError(ctx, err)
	}

	s.metrics.ObserveAction("delivery_status", "ok")
	return respondOrder(ctx, updated)
}

// AdvanceOrder handles PUT /api/v1/orders/:id/status - the generic advance.
// An order already at its final status responds 200 with success=false; the
// caller treats it as a refresh cue, not a failure.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req advanceRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, req.ContractNumber)
	if err != nil {
		s.metrics.ObserveAction("advance", "rejected")
		return respondError(ctx, err)
	}

	updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.ObserveAction("advance", outcomeOf(err))
		return respondError(ctx, err)
	}

	s.metrics.ObserveAction("advance", "ok")
	return respondOrder(ctx, updated)
}

// StartSession handles POST /api/v1/session - persists the console session.
// A missing token gets a generated one so local setups work out of the box.
func (s *Server) StartSession(ctx echo.Context) error {
	var req sessionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	if req.Role == "" || req.UserName == "" {
		return respondBadRequest(ctx, "role and userName are required")
	}

	token := req.Token
	if token == "" {
		token = uuid.NewString()
	}

	now := time.Now().UTC()
	session := ports.Session{
		Token:     token,
		Role:      req.Role,
		UserName:  req.UserName,
		StartedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx.Request().Context(), session); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, responseEnvelope{
		Success: true,
		Data: sessionResponse{
			Token:     session.Token,
			Role:      session.Role,
			UserName:  session.UserName,
			ExpiresAt: session.ExpiresAt,
		},
	})
}

// EndSession handles DELETE /api/v1/session - explicit teardown.
func (s *Server) EndSession(ctx echo.Context) error {
	if err := s.sessions.Clear(ctx.Request().Context()); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func orderIDFromPath(ctx echo.Context) (kernel.OrderID, error) {
	var raw int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &raw).BindError(); err != nil {
		return kernel.OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return kernel.NewOrderID(raw)
}

func respondOrder(ctx echo.Context, aggregate *order.Order) error {
	return ctx.JSON(http.StatusOK, responseEnvelope{
		Success: true,
		Data:    toOrderResponse(aggregate),
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, responseEnvelope{Success: false, Message: message})
}

// respondError maps domain and infrastructure errors onto the facade's status
// codes. Local refusals (validation, transition gates, busy latch) never made
// a network call; their codes tell the frontend which kind of refusal it was.
func respondError(ctx echo.Context, err error) error {
	envelope := responseEnvelope{Success: false, Message: err.Error()}

	switch {
	case errors.Is(err, order.ErrOrderAlreadyFinal):
		// A no-op, not a failure: respond 200 so the frontend just refreshes.
		return ctx.JSON(http.StatusOK, envelope)
	case errors.Is(err, errs.ErrSessionExpired):
		return ctx.JSON(http.StatusUnauthorized, envelope)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope)
	case errors.Is(err, order.ErrPaymentNotAllowed),
		errors.Is(err, order.ErrDeliveryCreationNotAllowed),
		errors.Is(err, order.ErrNoDeliveryRecord),
		errors.Is(err, order.ErrNoNextStatus),
		errors.Is(err, inflight.ErrBusy):
		return ctx.JSON(http.StatusConflict, envelope)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPaymentPlanRequired),
		errors.Is(err, commands.ErrDeliveryFieldsRequired):
		return ctx.JSON(http.StatusBadRequest, envelope)
	default:
		return ctx.JSON(http.StatusBadGateway, envelope)
	}
}

// outcomeOf classifies a handler error for the action counter.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, order.ErrPaymentNotAllowed),
		errors.Is(err, order.ErrDeliveryCreationNotAllowed),
		errors.Is(err, order.ErrNoDeliveryRecord),
		errors.Is(err, order.ErrNoNextStatus),
		errors.Is(err, order.ErrOrderAlreadyFinal),
		errors.Is(err, inflight.ErrBusy):
		return "rejected"
	default:
		return "error"
	}
}
