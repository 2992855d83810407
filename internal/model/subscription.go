package model

import "time"

// Subscription is a newsletter signup. Email is unique in the store.
type Subscription struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"fecha_suscripcion"`
	Active       bool      `json:"active" db:"activo"`
}

// SubscriptionOutcome is the result of a newsletter signup attempt.
type SubscriptionOutcome int

const (
	// OutcomeFailed means the store rejected the insert for a reason other
	// than a duplicate email.
	OutcomeFailed SubscriptionOutcome = iota
	// OutcomeCreated means a new subscription row was written.
	OutcomeCreated
	// OutcomeAlreadyExists means the email was already subscribed; nothing changed.
	OutcomeAlreadyExists
)

func (o SubscriptionOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}
