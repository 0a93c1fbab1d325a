package connector

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-switch/app/auth"
	"github.com/vibast-solutions/ms-go-switch/app/flow"
	"github.com/vibast-solutions/ms-go-switch/app/masking"
	"github.com/vibast-solutions/ms-go-switch/app/transport"
)

var (
	ErrConnectorNotSupported = errors.New("connector is not supported")
	ErrFlowNotImplemented    = errors.New("flow is not implemented by the connector")
)

// Credentials is the connector-specific presentation of merchant
// credentials: values to attach as headers and values to merge into the
// request body. Adapters produce it from ConnectorAuthType via MapAuth.
type Credentials struct {
	Headers map[string]string
	Body    map[string]string
}

func (c Credentials) String() string {
	return masking.Mask(c, masking.WithoutType)
}

func (c Credentials) GoString() string {
	return masking.Mask(c, masking.WithoutType)
}

// Connector is the descriptor every adapter registers under. Flow support is
// declared through Integrations: one adapter value per supported flow, each
// implementing Integration for that flow. A connector handling a single flow
// may instead implement Integration on itself and return nil. The set of
// connectors stays open; each one plugs in without touching the core.
type Connector interface {
	Name() string
	BaseURL() string

	// MapAuth converts the normalized auth model into this connector's
	// credential presentation. Unsupported auth kinds are a configuration
	// error.
	MapAuth(authType auth.ConnectorAuthType) (Credentials, error)

	// Integrations enumerates the connector's per-flow adapters.
	Integrations() []any
}

// Integration is the per-flow capability of a connector adapter: build the
// wire request for an envelope, then fold the wire response back into the
// envelope's response or error slot. HandleResponse must leave the envelope
// completed; connector-reported failures belong in the error slot, not in
// the returned error, which is reserved for decode-level defects.
type Integration[F flow.Marker, Req flow.RequestOf[F], Resp any] interface {
	BuildRequest(ctx context.Context, env *flow.Envelope[F, Req, Resp]) (*transport.Request, error)
	HandleResponse(env *flow.Envelope[F, Req, Resp], res *transport.Response) error
}

// IntegrationFor probes a connector for support of one flow. Absence is a
// capability error and maps to the reserved NotImplemented response.
func IntegrationFor[F flow.Marker, Req flow.RequestOf[F], Resp any](c Connector) (Integration[F, Req, Resp], bool) {
	for _, candidate := range c.Integrations() {
		if integ, ok := candidate.(Integration[F, Req, Resp]); ok {
			return integ, true
		}
	}
	if integ, ok := any(c).(Integration[F, Req, Resp]); ok {
		return integ, true
	}
	return nil, false
}
