package flow

import (
	"testing"

	"github.com/vibast-solutions/ms-go-switch/app/auth"
)

func newAuthorizeEnvelope() *AuthorizeEnvelope {
	return &AuthorizeEnvelope{
		MerchantID:        "m1",
		ConnectorName:     "x",
		PaymentID:         "p1",
		AttemptID:         "t1",
		Status:            AttemptStatusPending,
		Amount:            1000,
		Currency:          CurrencyUSD,
		PaymentMethodType: PaymentMethodTypeCard,
		AuthType:          AuthenticationTypeNoThreeDS,
		ConnectorAuth:     auth.NewHeaderKey("sk_test"),
		Request: AuthorizeRequest{
			Confirm: true,
		},
	}
}

// Each alias must remain constructible; a flow paired with another flow's
// request type is rejected by the compiler, which is the guarantee this
// package exists for.
func TestEnvelopeAliasesConstruct(t *testing.T) {
	_ = newAuthorizeEnvelope()
	_ = &SyncEnvelope{Request: SyncRequest{ConnectorTransactionID: "ctx_1"}}
	_ = &CaptureEnvelope{Request: CaptureRequest{ConnectorTransactionID: "ctx_1"}}
	_ = &VoidEnvelope{Request: VoidRequest{ConnectorTransactionID: "ctx_1"}}
	_ = &RefundEnvelope{Request: RefundRequest[Execute]{RefundID: "re_1", RefundAmount: 100}}
	_ = &RefundSyncEnvelope{Request: RefundRequest[RSync]{RefundID: "re_1"}}
}

func TestEnvelopeOutcomeSlotsAreMutuallyExclusive(t *testing.T) {
	env := newAuthorizeEnvelope()
	if env.Completed() {
		t.Fatal("fresh envelope must not be completed")
	}

	env.SetResponse(PaymentsResponse{ConnectorTransactionID: "ctx_1"})
	if !env.Completed() || !env.Succeeded() {
		t.Fatal("expected completed successful envelope")
	}
	if env.Error != nil {
		t.Fatal("error slot must be empty after SetResponse")
	}

	env.SetError(NewErrorResponse("card_declined", "Card declined", nil))
	if !env.Completed() || env.Succeeded() {
		t.Fatal("expected completed failed envelope")
	}
	if env.Response != nil {
		t.Fatal("response slot must be empty after SetError")
	}

	env.SetResponse(PaymentsResponse{ConnectorTransactionID: "ctx_2"})
	if env.Error != nil || env.Response == nil {
		t.Fatal("SetResponse must clear a previous error")
	}
}

func TestResponseAdapterWrapsEnvelope(t *testing.T) {
	env := newAuthorizeEnvelope()

	type stripeWireResponse struct {
		ID string
	}

	adapter := NewResponseAdapter(stripeWireResponse{ID: "pi_1"}, env, 200)
	if adapter.HTTPStatus != 200 {
		t.Fatalf("unexpected http status: %d", adapter.HTTPStatus)
	}
	if adapter.Envelope != env {
		t.Fatal("adapter must keep the originating envelope")
	}
	if adapter.RawResponse.ID != "pi_1" {
		t.Fatalf("unexpected raw response: %+v", adapter.RawResponse)
	}
}
