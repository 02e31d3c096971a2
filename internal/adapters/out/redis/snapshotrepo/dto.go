// Package snapshotrepo caches order aggregates in Redis. The cache only ever
// holds whole server responses; a stale or missing entry is repaired by the
// next refresh, never by a partial merge.
package snapshotrepo

import (
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
)

type orderDTO struct {
	ID       int64         `json:"id"`
	Status   string        `json:"status"`
	Total    int64         `json:"total"`
	Items    []lineItemDTO `json:"items"`
	Payments []paymentDTO  `json:"payments"`
	Delivery *deliveryDTO  `json:"delivery,omitempty"`
}

type lineItemDTO struct {
	VehicleType string `json:"vehicle_type"`
	Version     string `json:"version"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

type paymentDTO struct {
	Cycle   int       `json:"cycle"`
	DueDate time.Time `json:"due_date"`
	Amount  int64     `json:"amount"`
	Status  string    `json:"status"`
	Method  string    `json:"method,omitempty"`
}

type deliveryDTO struct {
	RecipientName string     `json:"recipient_name"`
	PhoneNumber   string     `json:"phone_number"`
	Address       string     `json:"address"`
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
}

func fromDomain(aggregate *order.Order) orderDTO {
	items := make([]lineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemDTO{
			VehicleType: item.VehicleType(),
			Version:     item.Version(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
		})
	}

	payments := make([]paymentDTO, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, paymentDTO{
			Cycle:   payment.Cycle(),
			DueDate: payment.DueDate(),
			Amount:  payment.Amount().Amount(),
			Status:  string(payment.Status()),
			Method:  payment.Method(),
		})
	}

	var delivery *deliveryDTO
	if d := aggregate.Delivery(); d != nil {
		delivery = &deliveryDTO{
			RecipientName: d.RecipientName(),
			PhoneNumber:   d.PhoneNumber(),
			Address:       d.Address(),
			Status:        string(d.Status()),
			DeliveredAt:   d.DeliveredAt(),
		}
	}

	return orderDTO{
		ID:       aggregate.ID().Int64(),
		Status:   aggregate.Status().String(),
		Total:    aggregate.Total().Amount(),
		Items:    items,
		Payments: payments,
		Delivery: delivery,
	}
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
			dto.Delivery.RecipientName,
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
