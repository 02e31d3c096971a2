package http

import (
	"time"

	"console/internal/core/application/usecases/queries"
	"console/internal/core/domain/model/order"
)

// responseEnvelope mirrors the order service's envelope so the frontend deals
// with one response shape end to end.
type responseEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type badgeDTO struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

type orderResponse struct {
	ID          int64                 `json:"id"`
	Status      string                `json:"status"`
	StatusBadge badgeDTO              `json:"statusBadge"`
	Total       int64                 `json:"total"`
	Items       []lineItemResponse    `json:"items"`
	Payments    []paymentResponse     `json:"payments"`
	Delivery    *deliveryResponse     `json:"delivery,omitempty"`
	Actions     orderActionsAvailable `json:"actions"`
}

type lineItemResponse struct {
	VehicleType string `json:"vehicleType"`
	Version     string `json:"version"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type paymentResponse struct {
	Cycle       int       `json:"cycle"`
	DueDate     time.Time `json:"dueDate"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	StatusBadge badgeDTO  `json:"statusBadge"`
	Method      string    `json:"method,omitempty"`
}

type deliveryResponse struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	StatusBadge badgeDTO   `json:"statusBadge"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// orderActionsAvailable tells the frontend which buttons to enable, computed
// from the same rule table the handlers enforce.
type orderActionsAvailable struct {
	CanPay            bool `json:"canPay"`
	CanCreateDelivery bool `json:"canCreateDelivery"`
	CanUpdateDelivery bool `json:"canUpdateDelivery"`
	CanAdvance        bool `json:"canAdvance"`
}

type actionEntryResponse struct {
	Action     string    `json:"action"`
	Outcome    string    `json:"outcome"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type paymentRequest struct {
	PaymentType   string `json:"paymentType"`
	PaymentPlanID int64  `json:"paymentPlanId"`
}

type deliveryRequest struct {
	EmployeeID  int64  `json:"employeeId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type deliveryStatusRequest struct {
	Status string `json:"status"`
}

type advanceRequest struct {
	ContractNumber string `json:"contractNumber"`
}

type sessionRequest struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserName string `json:"userName"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserName  string    `json:"userName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func toBadge(b order.Badge) badgeDTO {
	return badgeDTO{Label: b.Label, Tag: b.Tag}
}

func toOrderResponse(aggregate *order.Order) orderResponse {
	items := make([]lineItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemResponse{
			VehicleType: item.VehicleType(),
			Version:     item.Version(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().Amount(),
		})
	}

	payments := make([]paymentResponse, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, paymentResponse{
			Cycle:       payment.Cycle(),
			DueDate:     payment.DueDate(),
			Amount:      payment.Amount().Amount(),
			Status:      string(payment.Status()),
			StatusBadge: toBadge(payment.Status().Badge()),
			Method:      payment.Method(),
		})
	}

	var delivery *deliveryResponse
	if d := aggregate.Delivery(); d != nil {
		delivery = &deliveryResponse{
			Name:        d.RecipientName(),
			PhoneNumber: d.PhoneNumber(),
			Address:     d.Address(),
			Status:      string(d.Status()),
			StatusBadge: toBadge(d.Status().Badge()),
			DeliveredAt: d.DeliveredAt(),
		}
	}

	_, advanceErr := aggregate.NextStatus()

	return orderResponse{
		ID:          aggregate.ID().Int64(),
		Status:      aggregate.Status().String(),
		StatusBadge: toBadge(aggregate.Status().Badge()),
		Total:       aggregate.Total().Amount(),
		Items:       items,
		Payments:    payments,
		Delivery:    delivery,
		Actions: orderActionsAvailable{
			CanPay:            aggregate.ValidatePaymentAllowed() == nil,
			CanCreateDelivery: aggregate.ValidateDeliveryCreationAllowed() == nil,
			CanUpdateDelivery: aggregate.ValidateDeliveryUpdateAllowed() == nil,
			CanAdvance:        advanceErr == nil,
		},
	}
}

func toActionEntryResponses(entries []queries.GetOrderActionsQueryResponse) []actionEntryResponse {
	responses := make([]actionEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, actionEntryResponse{
			Action:     entry.Action,
			Outcome:    entry.Outcome,
			Message:    entry.Message,
			OccurredAt: entry.OccurredAt,
		})
	}
	return responses
}
