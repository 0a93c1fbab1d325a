package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-switch/app/auth"
	"github.com/vibast-solutions/ms-go-switch/app/connector"
	"github.com/vibast-solutions/ms-go-switch/app/entity"
	"github.com/vibast-solutions/ms-go-switch/app/factory"
	"github.com/vibast-solutions/ms-go-switch/app/flow"
	"github.com/vibast-solutions/ms-go-switch/app/repository"
	"github.com/vibast-solutions/ms-go-switch/app/transport"
)

type connectorResponseRepository interface {
	Create(ctx context.Context, record *entity.ConnectorResponse) error
	Update(ctx context.Context, record *entity.ConnectorResponse) error
	FindByPaymentMerchantTransaction(ctx context.Context, paymentID, merchantID, txnID string) (*entity.ConnectorResponse, error)
}

// SwitchService routes envelopes to connector adapters and records what the
// connector said about each attempt.
type SwitchService struct {
	client       transport.Client
	registry     *connector.Registry
	responseRepo connectorResponseRepository
	logger       logrus.FieldLogger
	defaultAuth  auth.ConnectorAuthType
}

func NewSwitchService(
	client transport.Client,
	registry *connector.Registry,
	responseRepo connectorResponseRepository,
) *SwitchService {
	return &SwitchService{
		client:       client,
		registry:     registry,
		responseRepo: responseRepo,
		logger:       factory.NewModuleLogger("switch-service"),
		defaultAuth:  auth.Placeholder(),
	}
}

func (s *SwitchService) Registry() *connector.Registry {
	return s.registry
}

// SetDefaultAuth installs the bootstrap credentials used for envelopes that
// arrive with placeholder auth. Envelopes carrying real credentials keep them.
func (s *SwitchService) SetDefaultAuth(a auth.ConnectorAuthType) {
	s.defaultAuth = a
}

// Execute runs one envelope against a connector integration. On return the
// envelope is completed: exactly one of the response and error slots holds a
// value. Configuration problems (invalid or placeholder credentials, a
// request that cannot be built) fail fast with an error before any call is
// made; everything past that point is folded into the envelope.
func Execute[F flow.Marker, Req flow.RequestOf[F], Resp any](
	ctx context.Context,
	client transport.Client,
	integ connector.Integration[F, Req, Resp],
	env *flow.Envelope[F, Req, Resp],
) error {
	if env.ConnectorAuth.IsPlaceholder() {
		return ErrPlaceholderAuth
	}
	if err := env.ConnectorAuth.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAuth, err)
	}

	req, err := integ.BuildRequest(ctx, env)
	if err != nil {
		if errors.Is(err, connector.ErrFlowNotImplemented) {
			env.SetError(flow.NewNotImplemented())
			return nil
		}
		return err
	}

	res, err := client.Do(ctx, req)
	if err != nil {
		// Includes cancellation and timeout: the attempt still terminates
		// in the error slot, never in-flight forever.
		env.SetError(flow.FromTransportError(err))
		return nil
	}

	if err := integ.HandleResponse(env, res); err != nil {
		env.SetError(flow.FromTransportError(err))
		return nil
	}

	if !env.Completed() {
		env.SetError(flow.NewErrorResponse("", "", nil))
		return ErrIncompleteEnvelope
	}

	return nil
}

// Route resolves the envelope's connector from the registry, executes the
// flow, and records the outcome for attempt-status-bearing flows. A
// connector that does not implement the flow completes the envelope with the
// reserved NotImplemented error.
func Route[F flow.Marker, Req flow.RequestOf[F], Resp any](
	ctx context.Context,
	s *SwitchService,
	env *flow.Envelope[F, Req, Resp],
) error {
	c, err := s.registry.Get(env.ConnectorName)
	if err != nil {
		if errors.Is(err, connector.ErrConnectorNotSupported) {
			return fmt.Errorf("%w: %s", ErrConnectorUnsupported, env.ConnectorName)
		}
		return err
	}

	if env.ConnectorAuth.IsPlaceholder() && !s.defaultAuth.IsPlaceholder() {
		env.ConnectorAuth = s.defaultAuth
	}

	integ, ok := connector.IntegrationFor[F, Req, Resp](c)
	if !ok {
		env.SetError(flow.NewNotImplemented())
	} else if err := Execute(ctx, s.client, integ, env); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"merchant_id": env.MerchantID,
		"payment_id":  env.PaymentID,
		"attempt_id":  env.AttemptID,
		"connector":   env.ConnectorName,
		"success":     env.Succeeded(),
	}).Info("flow_executed")

	// Refund flows carry no attempt-level connector response.
	if resp, ok := any(env.Response).(*flow.PaymentsResponse); ok {
		if _, err := s.RecordOutcome(ctx, env.MerchantID, env.PaymentID, env.AttemptID, env.ConnectorName, env.Amount, env.ReturnURL, resp); err != nil {
			return err
		}
	}

	return nil
}

// RecordOutcome upserts the connector-response row for one attempt: the
// natural-key lookup decides between first insert and in-place update, and
// the natural key itself never changes. resp may be nil for a failed
// attempt; the row then records the attempt without connector-side ids.
func (s *SwitchService) RecordOutcome(
	ctx context.Context,
	merchantID, paymentID, txnID, connectorName string,
	amount int64,
	returnURL *string,
	resp *flow.PaymentsResponse,
) (*entity.ConnectorResponse, error) {
	connectorTxnID := ""
	var redirectPayload *string
	if resp != nil {
		connectorTxnID = resp.ConnectorTransactionID
		if resp.RedirectionData != nil {
			encoded, err := json.Marshal(resp.RedirectionData)
			if err != nil {
				return nil, err
			}
			payload := string(encoded)
			redirectPayload = &payload
		}
	}

	now := time.Now().UTC()

	existing, err := s.responseRepo.FindByPaymentMerchantTransaction(ctx, paymentID, merchantID, txnID)
	if err != nil && !errors.Is(err, repository.ErrConnectorResponseNotFound) {
		return nil, err
	}

	if existing == nil {
		record := &entity.ConnectorResponse{
			MerchantID:             merchantID,
			PaymentID:              paymentID,
			TxnID:                  txnID,
			ConnectorName:          connectorName,
			Amount:                 amount,
			ConnectorTransactionID: connectorTxnID,
			ReturnURL:              returnURL,
			RedirectFormPayload:    redirectPayload,
			CreatedAt:              now,
			UpdatedAt:              now,
		}
		if err := s.responseRepo.Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrConnectorResponseAlreadyExists) {
				// Caller is expected to serialize writes per attempt; a
				// concurrent double insert surfaces instead of succeeding
				// twice.
				return nil, ErrConnectorResponseExists
			}
			return nil, err
		}
		return record, nil
	}

	existing.ConnectorName = connectorName
	existing.Amount = amount
	if returnURL != nil {
		existing.ReturnURL = returnURL
	}
	if connectorTxnID != "" {
		existing.ConnectorTransactionID = connectorTxnID
	}
	if redirectPayload != nil {
		existing.RedirectFormPayload = redirectPayload
	}
	existing.UpdatedAt = now

	if err := s.responseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
