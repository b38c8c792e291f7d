// internal/domain/entity/reference.go
package entity

import "time"

// DestinationRef is a curated reference row used to normalize free-text
// destination input before orchestration.
type DestinationRef struct {
	ID           uint
	Alias        string
	Canonical    string
	Country      string
	CurrencyCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CurrencyRef is a curated currency row with an INR exchange rate, used as
// a fallback when a generated profile carries no usable rate.
type CurrencyRef struct {
	ID          uint
	Code        string
	Name        string
	RateToINR   float64
	RefreshedAt time.Time
}
