package model

import "time"

// ContactMessage is a submitted contact-form message. Immutable after
// creation except for IsRead, which is set true exactly once.
type ContactMessage struct {
	ID        string    `json:"id" bson:"-"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	IsRead    bool      `json:"is_read" bson:"is_read"`
	IPAddress string    `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContactCreate holds the user-supplied contact form fields. The email is
// validated here, before any store interaction.
type ContactCreate struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
