package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Rows are never updated or deleted by the site.
type ContactMessage struct {
	ID      int64     `json:"id" db:"id"`
	Name    string    `json:"name" db:"nombre"`
	Email   string    `json:"email" db:"email"`
	Subject string    `json:"subject" db:"asunto"`
	Body    string    `json:"message" db:"mensaje"`
	SentAt  time.Time `json:"sent_at" db:"fecha_envio"`
	Read    bool      `json:"read" db:"leido"`
}

// ContactInput carries the four required fields of a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}
