package flow

// AttemptStatus is the lifecycle status of a payment attempt.
type AttemptStatus string

const (
	AttemptStatusStarted          AttemptStatus = "started"
	AttemptStatusPending          AttemptStatus = "pending"
	AttemptStatusAuthorized       AttemptStatus = "authorized"
	AttemptStatusCaptureInitiated AttemptStatus = "capture_initiated"
	AttemptStatusCharged          AttemptStatus = "charged"
	AttemptStatusVoidInitiated    AttemptStatus = "void_initiated"
	AttemptStatusVoided           AttemptStatus = "voided"
	AttemptStatusFailure          AttemptStatus = "failure"
)

func (s AttemptStatus) Valid() bool {
	switch s {
	case AttemptStatusStarted,
		AttemptStatusPending,
		AttemptStatusAuthorized,
		AttemptStatusCaptureInitiated,
		AttemptStatusCharged,
		AttemptStatusVoidInitiated,
		AttemptStatusVoided,
		AttemptStatusFailure:
		return true
	default:
		return false
	}
}

// Terminal reports whether the attempt can no longer change state.
func (s AttemptStatus) Terminal() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusVoided, AttemptStatusFailure:
		return true
	default:
		return false
	}
}

// Currency is an ISO 4217 alphabetic code.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencySGD Currency = "SGD"
	CurrencyUSD Currency = "USD"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyAED, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencySGD, CurrencyUSD:
		return true
	default:
		return false
	}
}

// PaymentMethodType is the kind of instrument used for the attempt.
type PaymentMethodType string

const (
	PaymentMethodTypeCard         PaymentMethodType = "card"
	PaymentMethodTypeWallet       PaymentMethodType = "wallet"
	PaymentMethodTypeBankTransfer PaymentMethodType = "bank_transfer"
	PaymentMethodTypePayLater     PaymentMethodType = "pay_later"
)

// AuthenticationType selects customer authentication for the attempt.
type AuthenticationType string

const (
	AuthenticationTypeThreeDS   AuthenticationType = "three_ds"
	AuthenticationTypeNoThreeDS AuthenticationType = "no_three_ds"
)

// CaptureMethod selects when an authorized amount is settled.
type CaptureMethod string

const (
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodManual    CaptureMethod = "manual"
)

// FutureUsage marks whether the instrument may be reused off-session.
type FutureUsage string

const (
	FutureUsageOnSession  FutureUsage = "on_session"
	FutureUsageOffSession FutureUsage = "off_session"
)

// RefundStatus is the connector-reported state of a refund.
type RefundStatus string

const (
	RefundStatusPending      RefundStatus = "pending"
	RefundStatusSuccess      RefundStatus = "success"
	RefundStatusFailure      RefundStatus = "failure"
	RefundStatusManualReview RefundStatus = "manual_review"
)

func (s RefundStatus) Valid() bool {
	switch s {
	case RefundStatusPending, RefundStatusSuccess, RefundStatusFailure, RefundStatusManualReview:
		return true
	default:
		return false
	}
}
