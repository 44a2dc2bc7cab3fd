package service

// Outcome classifies the result of an authentication attempt. Rejections
// are data, not errors: an error return from DoLogin always means an
// infrastructure failure, never "wrong password".
type Outcome int

const (
	// OutcomeOK means credentials matched an active account and trust has
	// been established.
	OutcomeOK Outcome = iota

	// OutcomeBadCredentials covers unknown username and wrong password
	// alike; callers must not distinguish the two.
	OutcomeBadCredentials

	// OutcomePendingActivation means the credentials matched but the
	// account has not been activated yet.
	OutcomePendingActivation

	// OutcomeThrottled means the client IP is banned and no credential
	// verification was performed.
	OutcomeThrottled
)

// String returns the lowercase name of the outcome for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeBadCredentials:
		return "bad_credentials"
	case OutcomePendingActivation:
		return "pending_activation"
	case OutcomeThrottled:
		return "throttled"
	default:
		return "unknown"
	}
}
