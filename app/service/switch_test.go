package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vibast-solutions/ms-go-switch/app/auth"
	"github.com/vibast-solutions/ms-go-switch/app/connector"
	"github.com/vibast-solutions/ms-go-switch/app/entity"
	"github.com/vibast-solutions/ms-go-switch/app/flow"
	"github.com/vibast-solutions/ms-go-switch/app/repository"
	"github.com/vibast-solutions/ms-go-switch/app/transport"
)

type fakeClient struct {
	response *transport.Response
	err      error
	lastReq  *transport.Request
}

func (c *fakeClient) Do(_ context.Context, req *transport.Request) (*transport.Response, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

type memoryResponseRepo struct {
	records map[string]*entity.ConnectorResponse
	nextID  uint64
}

func newMemoryResponseRepo() *memoryResponseRepo {
	return &memoryResponseRepo{records: map[string]*entity.ConnectorResponse{}}
}

func naturalKey(merchantID, paymentID, txnID string) string {
	return merchantID + "/" + paymentID + "/" + txnID
}

func (r *memoryResponseRepo) Create(_ context.Context, record *entity.ConnectorResponse) error {
	key := naturalKey(record.MerchantID, record.PaymentID, record.TxnID)
	if _, exists := r.records[key]; exists {
		return repository.ErrConnectorResponseAlreadyExists
	}
	r.nextID++
	record.ID = r.nextID
	clone := *record
	r.records[key] = &clone
	return nil
}

func (r *memoryResponseRepo) Update(_ context.Context, record *entity.ConnectorResponse) error {
	for key, existing := range r.records {
		if existing.ID == record.ID {
			clone := *record
			clone.MerchantID = existing.MerchantID
			clone.PaymentID = existing.PaymentID
			clone.TxnID = existing.TxnID
			r.records[key] = &clone
			return nil
		}
	}
	return repository.ErrConnectorResponseNotFound
}

func (r *memoryResponseRepo) FindByPaymentMerchantTransaction(_ context.Context, paymentID, merchantID, txnID string) (*entity.ConnectorResponse, error) {
	record, ok := r.records[naturalKey(merchantID, paymentID, txnID)]
	if !ok {
		return nil, repository.ErrConnectorResponseNotFound
	}
	clone := *record
	return &clone, nil
}

// fakepay supports Authorize only.
type fakepayConnector struct{}

func (fakepayConnector) Name() string    { return "fakepay" }
func (fakepayConnector) BaseURL() string { return "https://api.fakepay.example" }

func (fakepayConnector) MapAuth(authType auth.ConnectorAuthType) (connector.Credentials, error) {
	return connector.Credentials{
		Headers: map[string]string{"Authorization": "Bearer " + authType.APIKey().Expose()},
	}, nil
}

func (c fakepayConnector) Integrations() []any {
	return []any{fakepayAuthorize{c}}
}

type fakepayAuthorize struct {
	connector fakepayConnector
}

func (a fakepayAuthorize) BuildRequest(_ context.Context, env *flow.AuthorizeEnvelope) (*transport.Request, error) {
	credentials, err := a.connector.MapAuth(env.ConnectorAuth)
	if err != nil {
		return nil, err
	}
	return &transport.Request{
		Method:  "POST",
		URL:     a.connector.BaseURL() + "/v1/payments",
		Headers: credentials.Headers,
	}, nil
}

func (a fakepayAuthorize) HandleResponse(env *flow.AuthorizeEnvelope, res *transport.Response) error {
	var raw struct {
		ID    string `json:"id"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(res.Body, &raw); err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		env.SetError(flow.NewErrorResponse(raw.Error, raw.Error, nil))
		return nil
	}
	env.SetResponse(flow.PaymentsResponse{ConnectorTransactionID: raw.ID})
	return nil
}

func newAuthorizeEnvelope() *flow.AuthorizeEnvelope {
	return &flow.AuthorizeEnvelope{
		MerchantID:        "m1",
		ConnectorName:     "fakepay",
		PaymentID:         "p1",
		AttemptID:         "t1",
		Status:            flow.AttemptStatusPending,
		Amount:            1000,
		Currency:          flow.CurrencyUSD,
		PaymentMethodType: flow.PaymentMethodTypeCard,
		AuthType:          flow.AuthenticationTypeNoThreeDS,
		ConnectorAuth:     auth.NewHeaderKey("sk_test"),
		Request:           flow.AuthorizeRequest{Confirm: true},
	}
}

func TestExecuteSuccessFillsResponseSlot(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 200, Body: []byte(`{"id":"ctx_1"}`)}}
	env := newAuthorizeEnvelope()

	if err := Execute(context.Background(), client, fakepayAuthorize{fakepayConnector{}}, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !env.Succeeded() {
		t.Fatalf("expected success, got error %+v", env.Error)
	}
	if env.Response.ConnectorTransactionID != "ctx_1" {
		t.Fatalf("unexpected response: %+v", env.Response)
	}
	if client.lastReq.Headers["Authorization"] != "Bearer sk_test" {
		t.Fatalf("auth header not mapped: %+v", client.lastReq.Headers)
	}
}

func TestExecuteConnectorErrorFillsErrorSlot(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 402, Body: []byte(`{"error":"card_declined"}`)}}
	env := newAuthorizeEnvelope()

	if err := Execute(context.Background(), client, fakepayAuthorize{fakepayConnector{}}, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !env.Completed() || env.Succeeded() {
		t.Fatal("expected completed failed envelope")
	}
	if env.Error.Code != "card_declined" {
		t.Fatalf("unexpected error response: %+v", env.Error)
	}
}

func TestExecuteTransportFailureFillsErrorSlot(t *testing.T) {
	client := &fakeClient{err: errors.New("dial tcp: connection refused")}
	env := newAuthorizeEnvelope()

	if err := Execute(context.Background(), client, fakepayAuthorize{fakepayConnector{}}, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !env.Completed() || env.Succeeded() {
		t.Fatal("expected completed failed envelope")
	}
	if env.Error.Reason == nil || !strings.Contains(*env.Error.Reason, "connection refused") {
		t.Fatalf("transport detail lost: %+v", env.Error)
	}
}

func TestExecuteRejectsPlaceholderAuth(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 200, Body: []byte(`{"id":"ctx_1"}`)}}
	env := newAuthorizeEnvelope()
	env.ConnectorAuth = auth.Placeholder()

	err := Execute(context.Background(), client, fakepayAuthorize{fakepayConnector{}}, env)
	if !errors.Is(err, ErrPlaceholderAuth) {
		t.Fatalf("expected ErrPlaceholderAuth, got %v", err)
	}
	if client.lastReq != nil {
		t.Fatal("placeholder auth must never reach the transport")
	}
}

func TestExecuteRejectsInvalidAuth(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 200, Body: []byte(`{"id":"ctx_1"}`)}}
	env := newAuthorizeEnvelope()
	env.ConnectorAuth = auth.ConnectorAuthType{}

	err := Execute(context.Background(), client, fakepayAuthorize{fakepayConnector{}}, env)
	if !errors.Is(err, ErrInvalidAuth) {
		t.Fatalf("expected ErrInvalidAuth, got %v", err)
	}
	if client.lastReq != nil {
		t.Fatal("invalid auth must never reach the transport")
	}
}

func TestRouteRecordsOutcome(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 200, Body: []byte(`{"id":"ctx_1"}`)}}
	repo := newMemoryResponseRepo()
	svc := NewSwitchService(client, connector.NewRegistry(fakepayConnector{}), repo)

	env := newAuthorizeEnvelope()
	if err := Route(context.Background(), svc, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !env.Succeeded() {
		t.Fatalf("expected success, got %+v", env.Error)
	}

	record, err := repo.FindByPaymentMerchantTransaction(context.Background(), "p1", "m1", "t1")
	if err != nil {
		t.Fatalf("expected recorded outcome, got %v", err)
	}
	if record.ConnectorTransactionID != "ctx_1" || record.Amount != 1000 || record.ConnectorName != "fakepay" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestRouteAppliesDefaultAuthToPlaceholder(t *testing.T) {
	client := &fakeClient{response: &transport.Response{StatusCode: 200, Body: []byte(`{"id":"ctx_1"}`)}}
	svc := NewSwitchService(client, connector.NewRegistry(fakepayConnector{}), newMemoryResponseRepo())
	svc.SetDefaultAuth(auth.NewHeaderKey("sk_default"))

	env := newAuthorizeEnvelope()
	env.ConnectorAuth = auth.Placeholder()
	if err := Route(context.Background(), svc, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.lastReq.Headers["Authorization"] != "Bearer sk_default" {
		t.Fatalf("default credentials not applied: %+v", client.lastReq.Headers)
	}
}

func TestRoutePlaceholderWithoutDefaultAuthFails(t *testing.T) {
	client := &fakeClient{}
	svc := NewSwitchService(client, connector.NewRegistry(fakepayConnector{}), newMemoryResponseRepo())

	env := newAuthorizeEnvelope()
	env.ConnectorAuth = auth.Placeholder()
	if err := Route(context.Background(), svc, env); !errors.Is(err, ErrPlaceholderAuth) {
		t.Fatalf("expected ErrPlaceholderAuth, got %v", err)
	}
	if client.lastReq != nil {
		t.Fatal("placeholder auth must never reach the transport")
	}
}

func TestRouteUnsupportedFlowYieldsNotImplemented(t *testing.T) {
	client := &fakeClient{}
	repo := newMemoryResponseRepo()
	svc := NewSwitchService(client, connector.NewRegistry(fakepayConnector{}), repo)

	env := &flow.CaptureEnvelope{
		MerchantID:    "m1",
		ConnectorName: "fakepay",
		PaymentID:     "p1",
		AttemptID:     "t1",
		Amount:        1000,
		ConnectorAuth: auth.NewHeaderKey("sk_test"),
		Request:       flow.CaptureRequest{ConnectorTransactionID: "ctx_1"},
	}
	if err := Route(context.Background(), svc, env); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if env.Error == nil || env.Error.Code != flow.NotImplementedCode {
		t.Fatalf("expected not-implemented error, got %+v", env.Error)
	}
	if client.lastReq != nil {
		t.Fatal("unsupported flow must not reach the transport")
	}
}

func TestRouteUnknownConnector(t *testing.T) {
	svc := NewSwitchService(&fakeClient{}, connector.NewRegistry(), newMemoryResponseRepo())

	env := newAuthorizeEnvelope()
	env.ConnectorName = "nopay"
	if err := Route(context.Background(), svc, env); !errors.Is(err, ErrConnectorUnsupported) {
		t.Fatalf("expected ErrConnectorUnsupported, got %v", err)
	}
}

func TestRecordOutcomeInsertThenUpdate(t *testing.T) {
	repo := newMemoryResponseRepo()
	svc := NewSwitchService(&fakeClient{}, connector.NewRegistry(), repo)
	ctx := context.Background()

	returnURL := "https://merchant.example/return"
	first, err := svc.RecordOutcome(ctx, "m1", "p1", "t1", "x", 1000, &returnURL, &flow.PaymentsResponse{ConnectorTransactionID: "t1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, err := repo.FindByPaymentMerchantTransaction(ctx, "p1", "m1", "t1")
	if err != nil {
		t.Fatalf("expected record after first outcome, got %v", err)
	}
	if found.ID != first.ID || found.ConnectorTransactionID != "t1" {
		t.Fatalf("unexpected record: %+v", found)
	}

	form := &flow.RedirectForm{Endpoint: "https://bank.example/3ds", Method: "POST"}
	second, err := svc.RecordOutcome(ctx, "m1", "p1", "t1", "x", 1000, nil, &flow.PaymentsResponse{
		ConnectorTransactionID: "t1",
		RedirectionData:        form,
		Redirect:               true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("second outcome for the same attempt must update, not insert")
	}

	found, err = repo.FindByPaymentMerchantTransaction(ctx, "p1", "m1", "t1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.TxnID != "t1" {
		t.Fatalf("natural key changed: %+v", found)
	}
	if found.RedirectFormPayload == nil || !strings.Contains(*found.RedirectFormPayload, "bank.example/3ds") {
		t.Fatalf("redirect payload not recorded: %+v", found)
	}
	if found.ReturnURL == nil || *found.ReturnURL != returnURL {
		t.Fatalf("return url lost on update: %+v", found)
	}
}
