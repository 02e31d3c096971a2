package commands_test

import (
	"context"
	"testing"

	"console/internal/core/application/usecases/commands"
	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/core/ports"
	"console/internal/pkg/inflight"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) SubmitPayment(
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

func (m *MockOrderGateway) CreateDelivery(
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

func (m *MockOrderGateway) UpdateDeliveryStatus(
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

func (m *MockOrderGateway) AdvanceStatus(
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

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Replace(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSnapshotStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) OrderChanged(ctx context.Context, id kernel.OrderID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Success(ctx context.Context, message string) {
	m.Called(ctx, message)
}

func (m *MockNotificationSink) Warning(ctx context.Context, message string) {
	m.Called(ctx, message)
}

func (m *MockNotificationSink) Error(ctx context.Context, message string) {
	m.Called(ctx, message)
}

type MockActionLog struct{ mock.Mock }

func (m *MockActionLog) Append(ctx context.Context, entry ports.ActionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type testCollaborators struct {
	gateway   *MockOrderGateway
	snapshots *MockSnapshotStore
	events    *MockEventPublisher
	notifier  *MockNotificationSink
	actions   *MockActionLog
	locks     *inflight.Registry
}

func newTestCollaborators() *testCollaborators {
	return &testCollaborators{
		gateway:   new(MockOrderGateway),
		snapshots: new(MockSnapshotStore),
		events:    new(MockEventPublisher),
		notifier:  new(MockNotificationSink),
		actions:   new(MockActionLog),
		locks:     inflight.NewRegistry(),
	}
}

func (c *testCollaborators) environment() commands.Environment {
	return commands.Environment{
		Gateway:   c.gateway,
		Snapshots: c.snapshots,
		Events:    c.events,
		Notifier:  c.notifier,
		Actions:   c.actions,
		Locks:     c.locks,
	}
}

// expectSuccessSideEffects wires the best-effort calls every successful
// mutation performs after the gateway round trip.
func (c *testCollaborators) expectSuccessSideEffects(ctx context.Context, updated *order.Order) {
	c.snapshots.On("Replace", ctx, updated).Return(nil).Once()
	c.events.On("OrderChanged", ctx, updated.ID(), updated.Status()).Return(nil).Once()
	c.actions.On("Append", ctx, mock.AnythingOfType("ports.ActionEntry")).Return(nil).Once()
	c.notifier.On("Success", ctx, mock.AnythingOfType("string")).Once()
}

// expectFailureSideEffects wires the audit entry and error toast emitted when
// the gateway call itself fails.
func (c *testCollaborators) expectFailureSideEffects(ctx context.Context) {
	c.actions.On("Append", ctx, mock.AnythingOfType("ports.ActionEntry")).Return(nil).Once()
	c.notifier.On("Error", ctx, mock.AnythingOfType("string")).Once()
}

func (c *testCollaborators) assertExpectations(t *testing.T) {
	t.Helper()
	c.gateway.AssertExpectations(t)
	c.snapshots.AssertExpectations(t)
	c.events.AssertExpectations(t)
	c.notifier.AssertExpectations(t)
	c.actions.AssertExpectations(t)
}

func mustOrderID(t *testing.T, id int64) kernel.OrderID {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	return orderID
}

// testOrder restores a minimal aggregate in the given status, optionally
// carrying a delivery record in PREPARING.
func testOrder(t *testing.T, id int64, status order.Status, withDelivery bool) *order.Order {
	t.Helper()

	total, err := kernel.NewMoney(1_200_000_000)
	require.NoError(t, err)

	item, err := order.RestoreLineItem("VF 8", "Plus", total, 1)
	require.NoError(t, err)

	var delivery *order.Delivery
	if withDelivery {
		delivery, err = order.RestoreDelivery("Tran Thi B", "0912345678", "72 Le Thanh Ton, HCMC", order.DeliveryPreparing, nil)
		require.NoError(t, err)
	}

	aggregate, err := order.RestoreOrder(
		mustOrderID(t, id),
		status,
		total,
		[]order.LineItem{item},
		nil,
		delivery,
	)
	require.NoError(t, err)
	return aggregate
}
