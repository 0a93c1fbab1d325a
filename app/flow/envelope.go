package flow

import "github.com/vibast-solutions/ms-go-switch/app/auth"

// Envelope is the unit of work handed to a connector adapter. The marker F
// pins the legal request/response pairing at compile time; an adapter
// written for one flow cannot be invoked with another flow's payload.
//
// After execution exactly one of Response and Error holds a value. Use
// SetResponse/SetError to complete the envelope; they keep the two slots
// mutually exclusive.
type Envelope[F Marker, Req RequestOf[F], Resp any] struct {
	MerchantID    string
	ConnectorName string
	PaymentID     string
	AttemptID     string

	Status            AttemptStatus
	Amount            int64
	Currency          Currency
	PaymentMethodType PaymentMethodType
	AuthType          AuthenticationType

	ConnectorAuth auth.ConnectorAuthType
	Address       PaymentAddress

	Description     *string
	ReturnURL       *string
	PaymentMethodID *string

	Request Req

	Response *Resp
	Error    *ErrorResponse
}

// The legal flow/request/response combinations. Constructing an Envelope
// outside these pairings does not compile.
type (
	AuthorizeEnvelope  = Envelope[Authorize, AuthorizeRequest, PaymentsResponse]
	SyncEnvelope       = Envelope[PSync, SyncRequest, PaymentsResponse]
	CaptureEnvelope    = Envelope[Capture, CaptureRequest, PaymentsResponse]
	VoidEnvelope       = Envelope[Void, VoidRequest, PaymentsResponse]
	RefundEnvelope     = Envelope[Execute, RefundRequest[Execute], RefundResponse]
	RefundSyncEnvelope = Envelope[RSync, RefundRequest[RSync], RefundResponse]
)

// SetResponse completes the envelope with a success payload, clearing any
// previously recorded error.
func (e *Envelope[F, Req, Resp]) SetResponse(resp Resp) {
	e.Response = &resp
	e.Error = nil
}

// SetError completes the envelope with a normalized error, clearing any
// previously recorded response.
func (e *Envelope[F, Req, Resp]) SetError(errResp ErrorResponse) {
	e.Error = &errResp
	e.Response = nil
}

// Completed reports whether exactly one outcome slot is filled.
func (e *Envelope[F, Req, Resp]) Completed() bool {
	return (e.Response != nil) != (e.Error != nil)
}

// Succeeded reports whether the envelope completed with a success payload.
func (e *Envelope[F, Req, Resp]) Succeeded() bool {
	return e.Response != nil && e.Error == nil
}
