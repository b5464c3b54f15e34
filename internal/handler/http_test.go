package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/internal/handler"
	"github.com/carrent/order-service/internal/handler/mocks"
	"github.com/carrent/order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Caller{ID: "u1", Role: entities.RoleCustomer}
	admin    = entities.Caller{ID: "a1", Role: entities.RoleAdmin}
	nobody   = entities.Caller{}
)

const orderID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func newRouter(t *testing.T) (*mocks.MockOrderLifecycle, *mocks.MockOrderQueries, chi.Router) {
	t.Helper()

	svc := mocks.NewMockOrderLifecycle(t)
	queries := mocks.NewMockOrderQueries(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, svc, queries).Init(r)
	return svc, queries, r
}

func doRequest(r chi.Router, caller entities.Caller, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req = req.WithContext(middleware.WithCaller(req.Context(), caller))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	order := entities.Order{
		OrderID:    orderID,
		CustomerID: "u1",
		CarID:      "42",
		StartDate:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:     entities.StatusPending,
	}

	testCases := []struct {
		name         string
		caller       entities.Caller
		body         string
		mockBehavior func(svc *mocks.MockOrderLifecycle)
		wantCode     int
		check        func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "created",
			caller: customer,
			body:   `{"car_id":"42"}`,
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().CreateOrder(mock.Anything, customer, "42").Return(order, nil).Once()
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got handler.Order
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, orderID, got.OrderID)
				assert.Equal(t, "u1", got.CustomerID)
				assert.Equal(t, "pending", got.Status)
			},
		},
		{
			name:         "malformed body",
			caller:       customer,
			body:         `{"car_id":`,
			mockBehavior: func(*mocks.MockOrderLifecycle) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "missing car_id",
			caller:       customer,
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderLifecycle) {},
			wantCode:     http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "CarID")
			},
		},
		{
			name:   "unauthenticated",
			caller: nobody,
			body:   `{"car_id":"42"}`,
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CreateOrder(mock.Anything, nobody, "42").
					Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "unknown car",
			caller: customer,
			body:   `{"car_id":"missing"}`,
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CreateOrder(mock.Anything, customer, "missing").
					Return(entities.Order{}, entities.ErrUnknownCar).Once()
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "store unavailable",
			caller: customer,
			body:   `{"car_id":"42"}`,
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CreateOrder(mock.Anything, customer, "42").
					Return(entities.Order{}, errors.Join(entities.ErrDependency, errors.New("dial tcp"))).Once()
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:   "unexpected error",
			caller: customer,
			body:   `{"car_id":"42"}`,
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CreateOrder(mock.Anything, customer, "42").
					Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, r := newRouter(t)
			tc.mockBehavior(svc)

			rec := doRequest(r, tc.caller, http.MethodPost, "/orders", []byte(tc.body))

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.check != nil {
				tc.check(t, rec)
			}
		})
	}
}

func TestHTTPHandler_Transitions(t *testing.T) {
	confirmed := entities.Order{
		OrderID:    orderID,
		CustomerID: "u1",
		CarID:      "42",
		StartDate:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:     entities.StatusConfirmed,
	}

	testCases := []struct {
		name         string
		caller       entities.Caller
		target       string
		mockBehavior func(svc *mocks.MockOrderLifecycle)
		wantCode     int
	}{
		{
			name:   "confirm ok",
			caller: admin,
			target: "/orders/" + orderID + "/confirm",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().ConfirmOrder(mock.Anything, admin, orderID).Return(confirmed, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "confirm by customer is forbidden",
			caller: customer,
			target: "/orders/" + orderID + "/confirm",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					ConfirmOrder(mock.Anything, customer, orderID).
					Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "confirm without token",
			caller: nobody,
			target: "/orders/" + orderID + "/confirm",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					ConfirmOrder(mock.Anything, nobody, orderID).
					Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:         "confirm with malformed id",
			caller:       admin,
			target:       "/orders/not-a-uuid/confirm",
			mockBehavior: func(*mocks.MockOrderLifecycle) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:   "confirm unknown order",
			caller: admin,
			target: "/orders/" + orderID + "/confirm",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					ConfirmOrder(mock.Anything, admin, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "cancel after confirm conflicts",
			caller: admin,
			target: "/orders/" + orderID + "/cancel",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CancelOrder(mock.Anything, admin, orderID).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "complete by owner",
			caller: customer,
			target: "/orders/" + orderID + "/complete",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				completed := confirmed
				completed.Status = entities.StatusCompleted
				svc.EXPECT().CompleteOrder(mock.Anything, customer, orderID).Return(completed, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "complete by stranger is forbidden",
			caller: entities.Caller{ID: "u2", Role: entities.RoleCustomer},
			target: "/orders/" + orderID + "/complete",
			mockBehavior: func(svc *mocks.MockOrderLifecycle) {
				svc.EXPECT().
					CompleteOrder(mock.Anything, entities.Caller{ID: "u2", Role: entities.RoleCustomer}, orderID).
					Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, r := newRouter(t)
			tc.mockBehavior(svc)

			rec := doRequest(r, tc.caller, http.MethodPost, tc.target, nil)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestHTTPHandler_MyOrders(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	skoda := entities.CarSummary{CarID: "42", Brand: "Skoda", Model: "Octavia", DailyRate: 4500, Available: true}

	t.Run("ok with mixed car presence", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().MyOrders(mock.Anything, customer).Return([]entities.OrderView{
			{
				Order: entities.Order{OrderID: "o1", CustomerID: "u1", CarID: "42", StartDate: start, Status: entities.StatusPending},
				Car:   &skoda,
			},
			{
				Order: entities.Order{OrderID: "o2", CustomerID: "u1", CarID: "gone", StartDate: start, Status: entities.StatusCancelled},
			},
		}, nil).Once()

		rec := doRequest(r, customer, http.MethodGet, "/orders/my", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []handler.OrderView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		require.NotNil(t, got[0].Car)
		assert.Equal(t, "Octavia", got[0].Car.Model)
		assert.Nil(t, got[1].Car)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().MyOrders(mock.Anything, customer).Return([]entities.OrderView{}, nil).Once()

		rec := doRequest(r, customer, http.MethodGet, "/orders/my", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().MyOrders(mock.Anything, nobody).Return(nil, entities.ErrUnauthorized).Once()

		rec := doRequest(r, nobody, http.MethodGet, "/orders/my", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHTTPHandler_AllOrders(t *testing.T) {
	t.Run("admin ok", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().AllOrders(mock.Anything, admin).Return([]entities.OrderView{}, nil).Once()

		rec := doRequest(r, admin, http.MethodGet, "/orders", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().AllOrders(mock.Anything, customer).Return(nil, entities.ErrUnauthorized).Once()

		rec := doRequest(r, customer, http.MethodGet, "/orders", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		_, queries, r := newRouter(t)

		queries.EXPECT().
			AllOrders(mock.Anything, admin).
			Return(nil, errors.Join(entities.ErrDependency, errors.New("connection refused"))).Once()

		rec := doRequest(r, admin, http.MethodGet, "/orders", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
