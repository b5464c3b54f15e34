package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/internal/middleware"
	"github.com/carrent/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderLifecycle interface {
	CreateOrder(ctx context.Context, caller entities.Caller, carID string) (entities.Order, error)
	ConfirmOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error)
	CancelOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error)
	CompleteOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error)
}

type OrderQueries interface {
	MyOrders(ctx context.Context, caller entities.Caller) ([]entities.OrderView, error)
	AllOrders(ctx context.Context, caller entities.Caller) ([]entities.OrderView, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderLifecycle
	queries  OrderQueries
}

func NewHTTPHandler(logger *slog.Logger, svc OrderLifecycle, queries OrderQueries) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		queries:  queries,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Post("/orders/{order_id}/confirm", h.ConfirmOrder)
	r.Post("/orders/{order_id}/cancel", h.CancelOrder)
	r.Post("/orders/{order_id}/complete", h.CompleteOrder)
	r.Get("/orders/my", h.MyOrders)
	r.Get("/orders", h.AllOrders)
}

// CreateOrder places a new booking for the authenticated caller.
// @Summary      Create order
// @Description  Creates a pending rental order for the authenticated customer
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Car to book"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Unknown car"
// @Failure      503  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.CallerFromContext(ctx)

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, caller, req.CarID)
	if err != nil {
		ordersCreated.WithLabelValues(errResult(err)).Inc()
		h.writeDomainError(w, r, caller, err)
		return
	}

	ordersCreated.WithLabelValues(resultOK).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ConfirmOrder moves a pending order to confirmed.
// @Summary      Confirm order
// @Description  Admin-only, confirms a pending order
// @Tags         orders
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Illegal transition"
// @Security     BearerAuth
// @Router       /orders/{order_id}/confirm [post]
func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm", h.svc.ConfirmOrder)
}

// CancelOrder moves a pending order to cancelled.
// @Summary      Cancel order
// @Description  Admin-only, cancels a pending order
// @Tags         orders
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Illegal transition"
// @Security     BearerAuth
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "cancel", h.svc.CancelOrder)
}

// CompleteOrder moves a confirmed order to completed.
// @Summary      Complete order
// @Description  Completes a confirmed order, owner only
// @Tags         orders
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Illegal transition"
// @Security     BearerAuth
// @Router       /orders/{order_id}/complete [post]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete", h.svc.CompleteOrder)
}

func (h *HTTPHandler) transition(
	w http.ResponseWriter, r *http.Request,
	action string,
	fn func(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error),
) {
	ctx := r.Context()
	caller := middleware.CallerFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := fn(ctx, caller, orderID)
	if err != nil {
		orderTransitions.WithLabelValues(action, errResult(err)).Inc()
		h.writeDomainError(w, r, caller, err)
		return
	}

	orderTransitions.WithLabelValues(action, resultOK).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// MyOrders lists the caller's own orders.
// @Summary      My orders
// @Description  Lists the authenticated customer's orders with car summaries
// @Tags         orders
// @Success      200  {array}   OrderView
// @Failure      401  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/my [get]
func (h *HTTPHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.CallerFromContext(ctx)

	views, err := h.queries.MyOrders(ctx, caller)
	if err != nil {
		h.writeDomainError(w, r, caller, err)
		return
	}

	utils.WriteJSON(w, OrderViewsToJSON(views), http.StatusOK)
}

// AllOrders lists every order, admin only.
// @Summary      All orders
// @Description  Lists all orders with car summaries
// @Tags         orders
// @Success      200  {array}   OrderView
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *HTTPHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.CallerFromContext(ctx)

	views, err := h.queries.AllOrders(ctx, caller)
	if err != nil {
		h.writeDomainError(w, r, caller, err)
		return
	}

	utils.WriteJSON(w, OrderViewsToJSON(views), http.StatusOK)
}

// writeDomainError keeps authorization and invalid-state rejections as
// distinct user-facing messages.
func (h *HTTPHandler) writeDomainError(w http.ResponseWriter, r *http.Request, caller entities.Caller, err error) {
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		if !caller.Authenticated() {
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		utils.WriteError(w, "you are not allowed to perform this action", http.StatusForbidden)

	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "order status does not allow this action", http.StatusConflict)

	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrUnknownCar):
		utils.WriteError(w, "unknown car", http.StatusUnprocessableEntity)

	case errors.Is(err, entities.ErrDependency):
		h.logger.ErrorContext(r.Context(), "dependency failure", slog.Any("error", err))
		utils.WriteError(w, "service temporarily unavailable", http.StatusServiceUnavailable)

	default:
		h.logger.ErrorContext(r.Context(), "unexpected error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func errResult(err error) string {
	switch {
	case errors.Is(err, entities.ErrUnauthorized),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrUnknownCar),
		errors.Is(err, entities.ErrOrderNotFound):
		return resultRejected
	default:
		return resultError
	}
}
