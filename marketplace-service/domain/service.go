package domain

import (
	"context"

	"github.com/depanneo/booking-platform/shared/models"
)

// Service is a read-only catalogue entry a reservation is booked against
type Service struct {
	ID         models.ID
	Name       string
	PriceLabel string
	Price      models.Money
}

// NewService builds a catalogue entry, deriving its billable price from the
// label when no explicit price is stored
func NewService(id models.ID, name, priceLabel string, price models.Money) *Service {
	if !price.IsPositive() {
		if parsed, err := models.ParsePriceLabel(priceLabel); err == nil {
			price = parsed
		}
	}
	return &Service{
		ID:         id,
		Name:       name,
		PriceLabel: priceLabel,
		Price:      price,
	}
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id models.ID) (*Service, error)
}
