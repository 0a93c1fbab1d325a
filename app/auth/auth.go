package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vibast-solutions/ms-go-switch/app/masking"
)

// ErrInvalidAuthConfig reports malformed or incomplete connector credentials
// in merchant configuration.
var ErrInvalidAuthConfig = errors.New("invalid connector auth configuration")

// Kind discriminates how credentials are presented to a connector.
type Kind string

const (
	// KindHeaderKey presents a single API key, typically as a header.
	KindHeaderKey Kind = "HeaderKey"
	// KindBodyKey presents an API key plus a secondary key in the request body.
	KindBodyKey Kind = "BodyKey"
)

// ConnectorAuthType is the credential material for one connector, loaded
// from merchant configuration. Exactly one variant is active. The zero value
// is invalid; credentials are built via NewHeaderKey, NewBodyKey,
// UnmarshalJSON, or the explicit Placeholder.
//
// The type renders masked everywhere. The raw keys leave it only through
// APIKey()/Key1() Expose calls and the deliberate MarshalJSON path.
type ConnectorAuthType struct {
	kind        Kind
	apiKey      masking.Secret[string]
	key1        masking.Secret[string]
	placeholder bool
}

// NewHeaderKey builds a HeaderKey credential.
func NewHeaderKey(apiKey string) ConnectorAuthType {
	return ConnectorAuthType{kind: KindHeaderKey, apiKey: masking.NewSecret(apiKey)}
}

// NewBodyKey builds a BodyKey credential.
func NewBodyKey(apiKey, key1 string) ConnectorAuthType {
	return ConnectorAuthType{
		kind:   KindBodyKey,
		apiKey: masking.NewSecret(apiKey),
		key1:   masking.NewSecret(key1),
	}
}

// Placeholder is the stand-in used before real credentials are loaded. It is
// an explicit constructor rather than an implicit zero value so accidental
// use shows up in review, and Validate rejects it before a live call.
func Placeholder() ConnectorAuthType {
	return ConnectorAuthType{kind: KindHeaderKey, apiKey: masking.NewSecret(""), placeholder: true}
}

func (a ConnectorAuthType) Kind() Kind { return a.kind }

func (a ConnectorAuthType) APIKey() masking.Secret[string] { return a.apiKey }

func (a ConnectorAuthType) Key1() masking.Secret[string] { return a.key1 }

func (a ConnectorAuthType) IsPlaceholder() bool { return a.placeholder }

// Validate reports whether the credential is complete enough for a live
// connector call.
func (a ConnectorAuthType) Validate() error {
	switch a.kind {
	case KindHeaderKey:
		if a.placeholder {
			return fmt.Errorf("%w: placeholder credentials", ErrInvalidAuthConfig)
		}
		if strings.TrimSpace(a.apiKey.Expose()) == "" {
			return fmt.Errorf("%w: HeaderKey requires api_key", ErrInvalidAuthConfig)
		}
	case KindBodyKey:
		if strings.TrimSpace(a.apiKey.Expose()) == "" || strings.TrimSpace(a.key1.Expose()) == "" {
			return fmt.Errorf("%w: BodyKey requires api_key and key1", ErrInvalidAuthConfig)
		}
	default:
		return fmt.Errorf("%w: missing auth_type", ErrInvalidAuthConfig)
	}
	return nil
}

func (a ConnectorAuthType) String() string {
	return string(a.kind) + "(" + masking.Mask(a.apiKey.Expose(), masking.WithoutType) + ")"
}

func (a ConnectorAuthType) GoString() string {
	return a.String()
}

type authTypeWire struct {
	AuthType string `json:"auth_type"`
	APIKey   string `json:"api_key,omitempty"`
	Key1     string `json:"key1,omitempty"`
}

// MarshalJSON serializes real key material; it exists so merchant
// configuration can be persisted and round-tripped, and it is the only
// rendering of this type that is not masked.
func (a ConnectorAuthType) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	wire := authTypeWire{AuthType: string(a.kind), APIKey: a.apiKey.Expose()}
	if a.kind == KindBodyKey {
		wire.Key1 = a.key1.Expose()
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reads the merchant-configuration wire format: an object
// discriminated by auth_type. An unrecognized tag or a missing required
// field is a configuration error.
func (a *ConnectorAuthType) UnmarshalJSON(data []byte) error {
	var wire authTypeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAuthConfig, err)
	}

	switch Kind(wire.AuthType) {
	case KindHeaderKey:
		if wire.APIKey == "" {
			return fmt.Errorf("%w: HeaderKey requires api_key", ErrInvalidAuthConfig)
		}
		*a = NewHeaderKey(wire.APIKey)
	case KindBodyKey:
		if wire.APIKey == "" || wire.Key1 == "" {
			return fmt.Errorf("%w: BodyKey requires api_key and key1", ErrInvalidAuthConfig)
		}
		*a = NewBodyKey(wire.APIKey, wire.Key1)
	default:
		return fmt.Errorf("%w: unknown auth_type %q", ErrInvalidAuthConfig, wire.AuthType)
	}
	return nil
}
