package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailAlreadyExists = errors.New("a customer with this email already exists")
)

// Customer is a moving company buying leads from us.
type Customer struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	StripeCustomerID string    `json:"stripe_customer_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewCustomer(companyName, email, phone, stripeCustomerID string) *Customer {
	now := time.Now()
	return &Customer{
		ID:               uuid.New().String(),
		CompanyName:      companyName,
		Email:            email,
		Phone:            phone,
		StripeCustomerID: stripeCustomerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// CustomerWithSubscriptions is the admin listing shape: a customer joined with
// every subscription row that references it.
type CustomerWithSubscriptions struct {
	Customer
	Subscriptions []*Subscription `json:"subscriptions"`
}
