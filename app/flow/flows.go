package flow

// Flow markers are zero-size tags that exist only to keep envelopes for
// different payment operations distinct at compile time. The set is closed:
// adding a flow means adding a marker here and a request type that routes it.

// Authorize is the initial payment authorization flow.
type Authorize struct{}

// PSync is the payment status synchronization flow.
type PSync struct{}

// Capture settles a previously authorized payment.
type Capture struct{}

// Void cancels a previously authorized payment.
type Void struct{}

// Execute is the refund execution flow.
type Execute struct{}

// RSync is the refund status synchronization flow.
type RSync struct{}

// Marker is the closed set of flow tags an Envelope can carry.
type Marker interface {
	Authorize | PSync | Capture | Void | Execute | RSync
}

type refundMarker interface {
	Execute | RSync
}

// RequestOf ties a request payload to the flows it may travel under. A
// request type that does not route flow F cannot be paired with F in an
// Envelope; the mismatch is a compile error, not a runtime check.
type RequestOf[F Marker] interface {
	routesFlow(F)
}
