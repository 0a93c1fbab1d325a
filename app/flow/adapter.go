package flow

// ResponseAdapter pairs a connector's own decoded wire response with the
// envelope it answers and the transport status code. Adapters build one in
// their response-handling stage, then fold Raw into the envelope's response
// or error slot.
type ResponseAdapter[F Marker, Raw any, Req RequestOf[F], Resp any] struct {
	RawResponse Raw
	Envelope    *Envelope[F, Req, Resp]
	HTTPStatus  int
}

func NewResponseAdapter[F Marker, Raw any, Req RequestOf[F], Resp any](
	raw Raw,
	env *Envelope[F, Req, Resp],
	httpStatus int,
) ResponseAdapter[F, Raw, Req, Resp] {
	return ResponseAdapter[F, Raw, Req, Resp]{
		RawResponse: raw,
		Envelope:    env,
		HTTPStatus:  httpStatus,
	}
}
