package flow

// AuthorizeRequest is the flow-specific payload for payment authorization.
type AuthorizeRequest struct {
	PaymentMethodData PaymentMethodData
	Confirm           bool
	CaptureMethod     *CaptureMethod

	// Mandate fields for recurring/off-session payments.
	SetupFutureUsage    *FutureUsage
	MandateID           *string
	OffSession          *bool
	SetupMandateDetails *MandateData
}

func (AuthorizeRequest) routesFlow(Authorize) {}

// MandateData describes the mandate a customer agreed to when the
// instrument was stored for future use.
type MandateData struct {
	CustomerAcceptedAt *string
	AcceptanceType     *string
}

// SyncRequest is the flow-specific payload for payment status sync.
type SyncRequest struct {
	ConnectorTransactionID string
	EncodedData            *string
}

func (SyncRequest) routesFlow(PSync) {}

// CaptureRequest is the flow-specific payload for capturing an authorized
// payment.
type CaptureRequest struct {
	AmountToCapture        *int64
	ConnectorTransactionID string
}

func (CaptureRequest) routesFlow(Capture) {}

// VoidRequest is the flow-specific payload for cancelling an authorized
// payment.
type VoidRequest struct {
	ConnectorTransactionID string
	CancellationReason     *string
}

func (VoidRequest) routesFlow(Void) {}

// RefundRequest is the payload shared by the refund flows. Refunds are not
// attempt-status-bearing, so the same payload travels under both refund
// markers; the type parameter keeps the envelopes distinct.
type RefundRequest[F refundMarker] struct {
	RefundID               string
	PaymentMethodData      PaymentMethodData
	ConnectorTransactionID string
	RefundAmount           int64
}

func (RefundRequest[F]) routesFlow(_ F) {}

// PaymentsResponse is the normalized success payload for the payment flows.
type PaymentsResponse struct {
	ConnectorTransactionID string
	RedirectionData        *RedirectForm
	Redirect               bool
}

// RefundResponse is the normalized success payload for the refund flows.
type RefundResponse struct {
	ConnectorRefundID string
	RefundStatus      RefundStatus
}

// RedirectForm is the customer-facing redirect a connector may require,
// e.g. a 3-D Secure challenge form.
type RedirectForm struct {
	Endpoint   string            `json:"endpoint"`
	Method     string            `json:"method"`
	FormFields map[string]string `json:"form_fields,omitempty"`
}
