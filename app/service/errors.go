package service

import "errors"

var (
	ErrPlaceholderAuth         = errors.New("placeholder connector auth must not reach a live call")
	ErrInvalidAuth             = errors.New("invalid connector auth")
	ErrConnectorUnsupported    = errors.New("connector is not supported")
	ErrIncompleteEnvelope      = errors.New("connector adapter left the envelope without an outcome")
	ErrConnectorResponseExists = errors.New("connector response already exists")
)
