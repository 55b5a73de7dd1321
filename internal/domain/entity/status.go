package entity

// Status is the overall lifecycle status of an exchange request.
type Status string

const (
	// StatusPending is the initial status of every newly created request.
	StatusPending Status = "pending"
	// StatusApproved means an admin accepted the request and attached a warehouse.
	StatusApproved Status = "approved"
	// StatusDeclined is terminal: the request was rejected by an admin.
	StatusDeclined Status = "declined"
	// StatusCompleted is terminal: the exchange finished and credit was granted.
	StatusCompleted Status = "completed"
)

// ParseStatus converts a raw string to a Status.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusApproved, StatusDeclined, StatusCompleted:
		return Status(raw), true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further status transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCompleted
}

// TransitStatus tracks the physical shipment of the traded item. It is an
// independent axis that only carries meaning while the request is approved
// or completed; the zero value means the item has not been shipped.
type TransitStatus string

const (
	// TransitNone is the zero value: no shipment has been announced.
	TransitNone TransitStatus = ""
	// TransitShipping means the owner submitted shipping details.
	TransitShipping TransitStatus = "shipping"
	// TransitReceived means the warehouse confirmed the item arrived.
	TransitReceived TransitStatus = "received"
	// TransitCompleted means the exchange is settled; it forces StatusCompleted.
	TransitCompleted TransitStatus = "completed"
)

// ParseTransitStatus converts a raw string to a TransitStatus.
func ParseTransitStatus(raw string) (TransitStatus, bool) {
	switch TransitStatus(raw) {
	case TransitNone, TransitShipping, TransitReceived, TransitCompleted:
		return TransitStatus(raw), true
	default:
		return "", false
	}
}
