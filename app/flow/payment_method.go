package flow

import "github.com/vibast-solutions/ms-go-switch/app/masking"

// Card carries raw card data. Every field is cardholder data and therefore
// wrapped; adapters expose individual fields only while building a wire
// request.
type Card struct {
	Number     masking.Secret[string]
	ExpMonth   masking.Secret[string]
	ExpYear    masking.Secret[string]
	CVC        masking.Secret[string]
	HolderName masking.Secret[string]
}

// PaymentMethodData is the instrument data attached to authorize and refund
// requests. Exactly one member is set, matching PaymentMethodType on the
// envelope.
type PaymentMethodData struct {
	Card        *Card
	WalletToken *masking.Secret[string]
}
