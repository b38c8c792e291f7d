package repository

import (
	"context"

	"tripgenie-service/internal/domain/entity"
)

// DestinationRepository resolves free-text destination input against the
// curated reference table. A miss returns gorm.ErrRecordNotFound and is
// treated as non-fatal by callers.
type DestinationRepository interface {
	GetByAlias(ctx context.Context, alias string) (*entity.DestinationRef, error)
}

// CurrencyRepository looks up curated INR exchange rates by currency code.
type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.CurrencyRef, error)
}
