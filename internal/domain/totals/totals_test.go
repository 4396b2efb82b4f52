package totals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gyeonjeok/internal/domain/entities"
)

func TestComputeTotalsExcluding(t *testing.T) {
	items := []entities.LineItem{
		{Name: "철거", Quantity: 2, Price: 1000},
		{Name: "도장", Quantity: 1, Price: 500},
	}

	got := ComputeTotals(items, entities.TaxOptionExcluding)

	assert.Equal(t, int64(2500), got.Subtotal)
	assert.Equal(t, int64(250), got.TaxAmount)
	assert.Equal(t, int64(2750), got.Total)
}

func TestComputeTotalsIncluding(t *testing.T) {
	items := []entities.LineItem{
		{Name: "목공", Quantity: 1, Price: 1100},
	}

	got := ComputeTotals(items, entities.TaxOptionIncluding)

	// floor(1100 / 1.1) must come out as exactly 1000.
	assert.Equal(t, int64(1000), got.Subtotal)
	assert.Equal(t, int64(100), got.TaxAmount)
	assert.Equal(t, int64(1100), got.Total)
}

func TestComputeTotalsIncludingFloorsPerItem(t *testing.T) {
	// Two items whose nets floor individually: floor(1000/1.1) = 909 each.
	// Per-item flooring gives 1818; flooring once on the un-truncated sum
	// would give a different figure, which is exactly what must not happen.
	items := []entities.LineItem{
		{Quantity: 1, Price: 1000},
		{Quantity: 1, Price: 1000},
	}

	got := ComputeTotals(items, entities.TaxOptionIncluding)

	assert.Equal(t, int64(1818), got.Subtotal)
	assert.Equal(t, int64(181), got.TaxAmount)
	assert.Equal(t, int64(1999), got.Total)
}

func TestLineTotalsArtifact(t *testing.T) {
	// Per-line taxes are floored independently; their sum may come in under
	// the aggregate tax amount and that difference is expected.
	items := []entities.LineItem{
		{Quantity: 1, Price: 1000},
		{Quantity: 1, Price: 1000},
	}

	var lineTaxSum int64
	for _, it := range items {
		lineTaxSum += LineTotals(it, entities.TaxOptionIncluding).TaxAmount
	}
	aggregate := ComputeTotals(items, entities.TaxOptionIncluding)

	assert.Equal(t, int64(180), lineTaxSum)
	assert.Equal(t, int64(181), aggregate.TaxAmount)
}

func TestLineTotalsExcluding(t *testing.T) {
	got := LineTotals(entities.LineItem{Quantity: 3, Price: 15000}, entities.TaxOptionExcluding)

	assert.Equal(t, int64(45000), got.Subtotal)
	assert.Equal(t, int64(4500), got.TaxAmount)
	assert.Equal(t, int64(49500), got.Total)
}

func TestZeroQuantityContributesNothing(t *testing.T) {
	items := []entities.LineItem{
		{Quantity: 0, Price: 99999},
		{Quantity: 1, Price: 1000},
	}

	got := ComputeTotals(items, entities.TaxOptionExcluding)

	assert.Equal(t, int64(1000), got.Subtotal)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "1,000", FormatThousands(1000))
	assert.Equal(t, "1,234,567", FormatThousands(1234567))
	assert.Equal(t, "12,345,678,901", FormatThousands(12345678901))
}
