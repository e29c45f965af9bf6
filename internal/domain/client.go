package domain

import "time"

// ClientStatus enumerates client engagement states.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// Client is a person or entity the firm represents.
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
