package order

// Badge is the display mapping of a status value: a human-readable label and
// a color tag consumed by every screen. Centralizing the tables here keeps
// list and detail views from drifting apart.
type Badge struct {
	Label string
	Tag   string
}

// UnknownTag is the neutral color tag used for any status value absent from
// the lookup tables.
const UnknownTag = "default"

func orderStatusBadges() map[Status]Badge {
	return map[Status]Badge{
		Pending:         {Label: "Pending payment", Tag: "gold"},
		Paid:            {Label: "Paid", Tag: "green"},
		PendingDelivery: {Label: "Awaiting delivery", Tag: "blue"},
		Delivered:       {Label: "Delivered", Tag: "green"},
		Installment:     {Label: "Installment", Tag: "purple"},
	}
}

func deliveryStatusBadges() map[DeliveryStatus]Badge {
	return map[DeliveryStatus]Badge{
		DeliveryPreparing:  {Label: "Preparing", Tag: "gold"},
		DeliveryDelivering: {Label: "Delivering", Tag: "blue"},
		DeliveryDelivered:  {Label: "Delivered", Tag: "green"},
		DeliveryCanceled:   {Label: "Canceled", Tag: "red"},
	}
}

func paymentStatusBadges() map[PaymentStatus]Badge {
	return map[PaymentStatus]Badge{
		PaymentPaid:   {Label: "Paid", Tag: "green"},
		PaymentUnpaid: {Label: "Unpaid", Tag: "red"},
	}
}

// Badge returns the display mapping for an order status. Values outside the
// table render as themselves with the neutral tag; the lookup never fails.
func (s Status) Badge() Badge {
	if badge, ok := orderStatusBadges()[s]; ok {
		return badge
	}
	return Badge{Label: string(s), Tag: UnknownTag}
}

// Badge returns the display mapping for a delivery status, with the same
// neutral fallback for unknown values.
func (s DeliveryStatus) Badge() Badge {
	if badge, ok := deliveryStatusBadges()[s]; ok {
		return badge
	}
	return Badge{Label: string(s), Tag: UnknownTag}
}

// Badge returns the display mapping for a payment status, with the same
// neutral fallback for unknown values.
func (s PaymentStatus) Badge() Badge {
	if badge, ok := paymentStatusBadges()[s]; ok {
		return badge
	}
	return Badge{Label: string(s), Tag: UnknownTag}
}
