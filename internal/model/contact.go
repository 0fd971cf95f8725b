package model

import (
	"strings"
	"time"
)

// ContactRequest represents a contact form submission from the website
type ContactRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email,omitempty"`
	Service string   `json:"service"`
	AreaSqm *float64 `json:"area_sqm,omitempty"`
	Message string   `json:"message,omitempty"`
}

// MissingFields returns the names of required fields that are empty or
// whitespace-only. Name, phone and service are required; everything else
// is optional.
func (r *ContactRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(r.Service) == "" {
		missing = append(missing, "service")
	}
	return missing
}

// MissingFieldsError reports a contact submission rejected before delivery
// because required fields were empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ContactResponse represents the contact form submission outcome
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactSubmission is a delivered submission persisted for the sales team
type ContactSubmission struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email,omitempty" db:"email"`
	Service    string    `json:"service" db:"service"`
	AreaSqm    *float64  `json:"area_sqm,omitempty" db:"area_sqm"`
	Message    string    `json:"message,omitempty" db:"message"`
	ReceivedAt time.Time `json:"received_at" db:"received_at"`
}
