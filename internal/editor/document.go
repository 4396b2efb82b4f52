package editor

import (
	"time"

	"gyeonjeok/internal/domain/entities"
)

// Default texts prefilled on a fresh document; HasDirtyState compares the
// live document against the configured default supplier's values.
const (
	DefaultBusinessFields = "실내건축공사업"
	DefaultFooterNotes    = "본 견적서의 유효기간은 발행일로부터 30일입니다."
)

// DefaultSupplier returns the supplier seeded on a fresh document when the
// embedding application has no saved supplier to prefer.
func DefaultSupplier() entities.Supplier {
	return entities.Supplier{
		BusinessFields: DefaultBusinessFields,
		FooterNotes:    DefaultFooterNotes,
	}
}

// NewDocument builds a fresh estimate: today's date, a newly issued estimate
// number, the given supplier, an empty client and no items.
func NewDocument(seq *Sequence, supplier entities.Supplier) entities.EstimateDocument {
	now := time.Now()
	return entities.EstimateDocument{
		EstimateNumber: seq.Next(now),
		EstimateDate:   now.Format("2006-01-02"),
		Supplier:       supplier,
		Items:          []entities.LineItem{},
		TaxOption:      entities.TaxOptionIncluding,
		BusinessFields: supplier.BusinessFields,
		FooterNotes:    supplier.FooterNotes,
	}
}
