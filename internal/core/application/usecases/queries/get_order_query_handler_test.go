package queries_test

import (
	"context"
	"errors"
	"testing"

	"console/internal/core/application/usecases/queries"
	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefreshGateway struct{ mock.Mock }

func (m *MockRefreshGateway) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRefreshGateway) SubmitPayment(
	ctx context.Context,
	id kernel.OrderID,
	paymentType order.PaymentType,
	planID int64,
) (*order.Order, error) {
	args := m.Called(ctx, id, paymentType, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRefreshGateway) CreateDelivery(
	ctx context.Context,
	id kernel.OrderID,
	req ports.DeliveryRequest,
) (*order.Order, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRefreshGateway) UpdateDeliveryStatus(
	ctx context.Context,
	id kernel.OrderID,
	status order.DeliveryStatus,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRefreshGateway) AdvanceStatus(
	ctx context.Context,
	id kernel.OrderID,
	next order.Status,
	contractNumber string,
) (*order.Order, error) {
	args := m.Called(ctx, id, next, contractNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRefreshSnapshots struct{ mock.Mock }

func (m *MockRefreshSnapshots) Replace(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRefreshSnapshots) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func restoreAggregate(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	total, err := kernel.NewMoney(999_000_000)
	require.NoError(t, err)
	item, err := order.RestoreLineItem("VF 9", "Eco", total, 1)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(orderID, status, total, []order.LineItem{item}, nil, nil)
	require.NoError(t, err)
	return aggregate
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreAggregate(t, 42, order.Pending)

	gateway := new(MockRefreshGateway)
	snapshots := new(MockRefreshSnapshots)

	gateway.On("GetOrder", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	snapshots.On("Replace", ctx, aggregate).Return(nil).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	handler := queries.NewGetOrderQueryHandler(gateway, snapshots, nil)
	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, result.IsEqual(aggregate))
	gateway.AssertExpectations(t)
	snapshots.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_Idempotent(t *testing.T) {
	// Two refreshes in a row leave exactly the state one refresh leaves.
	ctx := t.Context()
	aggregate := restoreAggregate(t, 42, order.Paid)

	gateway := new(MockRefreshGateway)
	snapshots := new(MockRefreshSnapshots)

	gateway.On("GetOrder", ctx, aggregate.ID()).Return(aggregate, nil).Twice()
	snapshots.On("Replace", ctx, aggregate).Return(nil).Twice()

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	handler := queries.NewGetOrderQueryHandler(gateway, snapshots, nil)

	first, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, first.Status(), second.Status())
	assert.True(t, first.IsEqual(second))
	gateway.AssertExpectations(t)
	snapshots.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	orderID, err := kernel.NewOrderID(42)
	require.NoError(t, err)

	gateway := new(MockRefreshGateway)
	snapshots := new(MockRefreshSnapshots)

	gateway.On("GetOrder", ctx, orderID).Return(nil, errors.New("order service unavailable")).Once()

	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	handler := queries.NewGetOrderQueryHandler(gateway, snapshots, nil)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.EqualError(t, err, "order service unavailable")
	snapshots.AssertNotCalled(t, "Replace")
}

func TestGetOrderQueryHandler_Handle_CacheFailureDoesNotFailRead(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreAggregate(t, 42, order.Pending)

	gateway := new(MockRefreshGateway)
	snapshots := new(MockRefreshSnapshots)

	gateway.On("GetOrder", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	snapshots.On("Replace", ctx, aggregate).Return(errors.New("redis down")).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	handler := queries.NewGetOrderQueryHandler(gateway, snapshots, nil)
	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, result.IsEqual(aggregate))
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	gateway := new(MockRefreshGateway)
	snapshots := new(MockRefreshSnapshots)

	handler := queries.NewGetOrderQueryHandler(gateway, snapshots, nil)
	_, err := handler.Handle(ctx, queries.GetOrderQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	gateway.AssertNotCalled(t, "GetOrder")
}
