package flow

import "testing"

func TestAttemptStatusTerminal(t *testing.T) {
	if AttemptStatusPending.Terminal() || AttemptStatusAuthorized.Terminal() {
		t.Fatal("pending and authorized are not terminal")
	}
	if !AttemptStatusCharged.Terminal() || !AttemptStatusVoided.Terminal() || !AttemptStatusFailure.Terminal() {
		t.Fatal("charged, voided, and failure are terminal")
	}
}

func TestCurrencyValid(t *testing.T) {
	if !CurrencyUSD.Valid() {
		t.Fatal("USD must be valid")
	}
	if Currency("ZZZ").Valid() {
		t.Fatal("unknown currency must be invalid")
	}
}
