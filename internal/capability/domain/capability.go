package domain

import (
	"slices"
	"time"
)

// Capability is a named consulting offering with a weekly capacity and a
// roster of registered consultants. The name is the public key; clients
// address capabilities by name, never by ID.
type Capability struct {
	ID                string
	Name              string
	Description       string
	PracticeArea      string
	SkillLevels       []string
	IndustryVerticals []string
	Certifications    []string
	Capacity          int      // hours per week available across the team
	Consultants       []string // emails, in registration order
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasConsultant reports whether email is already on the roster.
func (c Capability) HasConsultant(email string) bool {
	return slices.Contains(c.Consultants, email)
}
