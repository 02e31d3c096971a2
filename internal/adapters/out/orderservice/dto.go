// Package orderservice is the HTTP client for the external order service. It
// implements the gateway port: one call per workflow action, bearer token from
// the session store, and the full updated aggregate parsed from every response.
package orderservice

import (
	"encoding/json"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
)

// envelope is the order service's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type orderDTO struct {
	ID       int64         `json:"id"`
	Status   string        `json:"status"`
	Total    int64         `json:"total"`
	Items    []lineItemDTO `json:"items"`
	Payments []paymentDTO  `json:"payments"`
	Delivery *deliveryDTO  `json:"delivery"`
}

type lineItemDTO struct {
	VehicleType string `json:"vehicleType"`
	Version     string `json:"version"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

type paymentDTO struct {
	Cycle   int       `json:"cycle"`
	DueDate time.Time `json:"dueDate"`
	Amount  int64     `json:"amount"`
	Status  string    `json:"status"`
	Method  string    `json:"method"`
}

type deliveryDTO struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type paymentRequestDTO struct {
	PaymentType   string `json:"paymentType"`
	PaymentPlanID int64  `json:"paymentPlanId"`
}

type deliveryRequestDTO struct {
	EmployeeID  int64  `json:"employeeId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type deliveryStatusRequestDTO struct {
	Status string `json:"status"`
}

type advanceRequestDTO struct {
	Status         string `json:"status"`
	ContractNumber string `json:"contractNumber,omitempty"`
}

func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.RestoreLineItem(itemDTO.VehicleType, itemDTO.Version, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		amount, amountErr := kernel.NewMoney(paymentDTO.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		payment, paymentErr := order.RestorePayment(
			paymentDTO.Cycle,
			paymentDTO.DueDate,
			amount,
			order.PaymentStatus(paymentDTO.Status),
			paymentDTO.Method,
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	var delivery *order.Delivery
	if dto.Delivery != nil {
		delivery, err = order.RestoreDelivery(
			dto.Delivery.Name,
			dto.Delivery.PhoneNumber,
			dto.Delivery.Address,
			order.DeliveryStatus(dto.Delivery.Status),
			dto.Delivery.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, order.Status(dto.Status), total, items, payments, delivery)
}
