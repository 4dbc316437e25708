package offer

type State string

const (
	StateDraft           State = "draft"
	StateSubmitting      State = "submitting"
	StateAwaitingPayment State = "awaiting_payment"
	StateSent            State = "sent"
	StateAccepted        State = "accepted"
	StateDeclined        State = "declined"
	StateExpired         State = "expired"
	StateFailed          State = "failed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateDraft, StateSubmitting, StateAwaitingPayment, StateSent,
		StateAccepted, StateDeclined, StateExpired, StateFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports the states set by the seller or the backend once an
// offer has been sent.
func (s State) IsTerminal() bool {
	switch s {
	case StateAccepted, StateDeclined, StateExpired:
		return true
	default:
		return false
	}
}

func (s State) IsInFlight() bool {
	return s == StateSubmitting || s == StateAwaitingPayment
}

func (s State) IsEditable() bool {
	return s == StateDraft || s == StateFailed
}

type OutcomeKind string

const (
	OutcomeCompleted OutcomeKind = "completed"
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeFailed    OutcomeKind = "failed"
)

func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomeCompleted, OutcomeCancelled, OutcomeFailed:
		return true
	default:
		return false
	}
}

// PaymentOutcome is what the payment sheet reports back.
type PaymentOutcome struct {
	Kind   OutcomeKind
	Reason string
}

func Completed() PaymentOutcome { return PaymentOutcome{Kind: OutcomeCompleted} }
func Cancelled() PaymentOutcome { return PaymentOutcome{Kind: OutcomeCancelled} }

func Failed(reason string) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeFailed, Reason: reason}
}
