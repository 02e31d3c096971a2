package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/core/ports"
	"console/internal/pkg/errs"
	"console/internal/pkg/metrics"
)

// Client implements ports.OrderGateway over the order service's REST API.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions ports.SessionStore
	metrics  *metrics.WorkflowMetrics
	logger   *slog.Logger
}

// NewClient creates a gateway client. httpClient may be nil; the default
// client is used then. The metrics handle may be nil as well.
func NewClient(
	baseURL string,
	httpClient *http.Client,
	sessions ports.SessionStore,
	workflowMetrics *metrics.WorkflowMetrics,
	logger *slog.Logger,
) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		sessions: sessions,
		metrics:  workflowMetrics,
		logger:   logger.With("component", "orderservice"),
	}
}

// GetOrder fetches the canonical aggregate for an order.
func (c *Client) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return c.doOrder(ctx, http.MethodGet, fmt.Sprintf("/order/%d", id.Int64()), "get_order", nil)
}

// SubmitPayment posts a payment action for the order.
func (c *Client) SubmitPayment(
	ctx context.Context,
	id kernel.OrderID,
	paymentType order.PaymentType,
	planID int64,
) (*order.Order, error) {
	body := paymentRequestDTO{PaymentType: string(paymentType), PaymentPlanID: planID}
	return c.doOrder(ctx, http.MethodPost, fmt.Sprintf("/order/%d/payment", id.Int64()), "submit_payment", body)
}

// CreateDelivery posts a delivery assignment for the order.
func (c *Client) CreateDelivery(
	ctx context.Context,
	id kernel.OrderID,
	req ports.DeliveryRequest,
) (*order.Order, error) {
	body := deliveryRequestDTO{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	return c.doOrder(ctx, http.MethodPost, fmt.Sprintf("/order/%d/delivery", id.Int64()), "create_delivery", body)
}

// UpdateDeliveryStatus moves the order's delivery record to a new status.
func (c *Client) UpdateDeliveryStatus(
	ctx context.Context,
	id kernel.OrderID,
	status order.DeliveryStatus,
) (*order.Order, error) {
	body := deliveryStatusRequestDTO{Status: string(status)}
	return c.doOrder(ctx, http.MethodPut,
		fmt.Sprintf("/order/%d/delivery/status", id.Int64()), "update_delivery_status", body)
}

// AdvanceStatus asks the server to move the order to the computed next status.
func (c *Client) AdvanceStatus(
	ctx context.Context,
	id kernel.OrderID,
	next order.Status,
	contractNumber string,
) (*order.Order, error) {
	body := advanceRequestDTO{Status: next.String(), ContractNumber: contractNumber}
	return c.doOrder(ctx, http.MethodPut, fmt.Sprintf("/order/%d/status", id.Int64()), "advance_status", body)
}

func (c *Client) doOrder(ctx context.Context, method, path, endpoint string, body any) (*order.Order, error) {
	data, err := c.do(ctx, method, path, endpoint, body)
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order service response", err)
	}

	return toDomain(dto)
}

// do performs one request against the order service and unwraps the response
// envelope. A 401 clears the persisted session before returning.
func (c *Client) do(ctx context.Context, method, path, endpoint string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if session, sessionErr := c.sessions.Current(ctx); sessionErr == nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveGateway(endpoint, float64(time.Since(started).Milliseconds()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.sessions.Clear(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "failed to clear session after 401", "error", clearErr)
		}
		return nil, errs.NewSessionExpiredErrorWithCause(
			fmt.Errorf("order service rejected the token on %s %s", method, path))
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(raw, &env); unmarshalErr != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("order service returned status %d on %s %s", resp.StatusCode, method, path)
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("order service response", unmarshalErr)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("order service returned status %d on %s %s", resp.StatusCode, method, path)
		}
		return nil, fmt.Errorf("%s", message)
	}

	return env.Data, nil
}
