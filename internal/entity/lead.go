package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusAvailable = "available"
	LeadStatusSold      = "sold"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead is a prospective mover inquiry. MoveDate is kept as an ISO date string
// (YYYY-MM-DD) because that is what goes over the wire and into storage.
type Lead struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MoveDate       string    `json:"move_date"`
	OriginZip      string    `json:"origin_zip"`
	DestinationZip string    `json:"destination_zip"`
	HomeSize       string    `json:"home_size"`
	Budget         string    `json:"budget"`
	Urgency        string    `json:"urgency"`
	Score          int       `json:"score"`
	Reasoning      string    `json:"reasoning"`
	Status         string    `json:"status"`
	AssignedTo     string    `json:"assigned_to,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewLead builds an unscored lead in the available state.
func NewLead(fullName, email, phone, moveDate, originZip, destinationZip, homeSize, budget, urgency string) *Lead {
	now := time.Now()
	return &Lead{
		ID:             uuid.New().String(),
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		MoveDate:       moveDate,
		OriginZip:      originZip,
		DestinationZip: destinationZip,
		HomeSize:       homeSize,
		Budget:         budget,
		Urgency:        urgency,
		Status:         LeadStatusAvailable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
