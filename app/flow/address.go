package flow

// Address is billing/shipping context carried on the envelope. The switch
// core never interprets it; connector adapters map it into their own wire
// shapes.
type Address struct {
	Line1   *string
	Line2   *string
	City    *string
	State   *string
	Zip     *string
	Country *string
}

// PaymentAddress groups the addresses attached to a payment attempt.
type PaymentAddress struct {
	Billing  *Address
	Shipping *Address
}
