package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
)

// GormDestinationRepository implements the DestinationRepository interface
type GormDestinationRepository struct {
	db *gorm.DB
}

// NewGormDestinationRepository creates a new GORM destination repository
func NewGormDestinationRepository(db *gorm.DB) repository.DestinationRepository {
	return &GormDestinationRepository{
		db: db,
	}
}

// Destinations GORM model for database mapping
type Destinations struct {
	ID           uint   `gorm:"primaryKey"`
	Alias        string `gorm:"column:alias;unique"`
	Canonical    string `gorm:"column:canonical"`
	Country      string `gorm:"column:country"`
	CurrencyCode string `gorm:"column:currency_code"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Destinations) TableName() string {
	return "m_destinations"
}

// GetByAlias finds a curated destination row by its lowercase alias
func (r *GormDestinationRepository) GetByAlias(ctx context.Context, alias string) (*entity.DestinationRef, error) {
	var dest Destinations
	result := r.db.WithContext(ctx).Where("alias = ?", strings.ToLower(alias)).First(&dest)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.DestinationRef{
		ID:           dest.ID,
		Alias:        dest.Alias,
		Canonical:    dest.Canonical,
		Country:      dest.Country,
		CurrencyCode: dest.CurrencyCode,
		CreatedAt:    dest.CreatedAt,
		UpdatedAt:    dest.UpdatedAt,
	}, nil
}

// GormCurrencyRepository implements the CurrencyRepository interface
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GORM currency repository
func NewGormCurrencyRepository(db *gorm.DB) repository.CurrencyRepository {
	return &GormCurrencyRepository{
		db: db,
	}
}

// Currencies GORM model for database mapping
type Currencies struct {
	ID          uint    `gorm:"primaryKey"`
	Code        string  `gorm:"column:code;unique"`
	Name        string  `gorm:"column:name"`
	RateToINR   float64 `gorm:"column:rate_to_inr"`
	RefreshedAt time.Time
}

// TableName overrides the default table name
func (Currencies) TableName() string {
	return "m_currencies"
}

// GetByCode finds a currency by its ISO code
func (r *GormCurrencyRepository) GetByCode(ctx context.Context, code string) (*entity.CurrencyRef, error) {
	var cur Currencies
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&cur)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.CurrencyRef{
		ID:          cur.ID,
		Code:        cur.Code,
		Name:        cur.Name,
		RateToINR:   cur.RateToINR,
		RefreshedAt: cur.RefreshedAt,
	}, nil
}
