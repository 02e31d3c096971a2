package order

import (
	"errors"
	"fmt"
	"time"

	"console/internal/pkg/errs"
)

// DeliveryStatus is the state of the delivery record attached to an order.
type DeliveryStatus string

const (
	DeliveryPreparing  DeliveryStatus = "PREPARING"
	DeliveryDelivering DeliveryStatus = "DELIVERING"
	DeliveryDelivered  DeliveryStatus = "DELIVERED"
	DeliveryCanceled   DeliveryStatus = "CANCELED"
)

// ErrNoDeliveryRecord reports a delivery status update for an order that has
// no delivery record yet. Updates only require a pre-existing record; they do
// not depend on the order status.
var ErrNoDeliveryRecord = errors.New("the order has no delivery record yet")

// Validate checks that the delivery status is one of the enumerated values.
func (s DeliveryStatus) Validate() error {
	switch s {
	case DeliveryPreparing, DeliveryDelivering, DeliveryDelivered, DeliveryCanceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%q is not a valid delivery status", string(s)),
		)
	}
}

// Delivery is the at-most-one delivery record carried on the order aggregate.
type Delivery struct {
	recipientName string
	phoneNumber   string
	address       string
	status        DeliveryStatus
	deliveredAt   *time.Time
}

// RestoreDelivery reconstructs the delivery record from the server aggregate.
func RestoreDelivery(
	recipientName string,
	phoneNumber string,
	address string,
	status DeliveryStatus,
	deliveredAt *time.Time,
) (*Delivery, error) {
	delivery := &Delivery{deliveredAt: deliveredAt}

	if err := errors.Join(
		delivery.setRecipientName(recipientName),
		delivery.setPhoneNumber(phoneNumber),
		delivery.setAddress(address),
		delivery.setStatus(status),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RecipientName returns who receives the vehicles.
func (d *Delivery) RecipientName() string {
	return d.recipientName
}

// PhoneNumber returns the recipient's phone number.
func (d *Delivery) PhoneNumber() string {
	return d.phoneNumber
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// Status returns the delivery state.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// DeliveredAt returns the delivery date, or nil while undelivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	d.recipientName = name
	return nil
}

func (d *Delivery) setPhoneNumber(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	d.phoneNumber = phone
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setStatus(status DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
