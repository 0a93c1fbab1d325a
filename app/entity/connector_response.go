package entity

import "time"

// ConnectorResponse is the last known connector-side truth for a payment
// attempt. One row per (merchant_id, payment_id, txn_id); created on the
// first connector interaction for the attempt and mutated in place on later
// ones. Retention is owned elsewhere; this core never deletes rows.
type ConnectorResponse struct {
	ID uint64

	MerchantID string
	PaymentID  string
	TxnID      string

	ConnectorName          string
	Amount                 int64
	ConnectorTransactionID string

	ReturnURL *string

	// Opaque JSON for a redirect form the customer must complete, e.g. a
	// 3-D Secure challenge.
	RedirectFormPayload *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
