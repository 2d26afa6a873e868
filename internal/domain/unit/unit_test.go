//go:build unit

package unit_test

import (
	"testing"

	"webshopper/internal/domain/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		u        unit.Unit
		want     float64
	}{
		{name: "gram is identity", quantity: 250, u: unit.Gram, want: 250},
		{name: "kilogram to gram", quantity: 1.5, u: unit.Kilogram, want: 1500},
		{name: "ounce to gram", quantity: 2, u: unit.Ounce, want: 56.699},
		{name: "pound to gram", quantity: 1, u: unit.Pound, want: 453.592},
		{name: "milliliter is identity", quantity: 30, u: unit.Milliliter, want: 30},
		{name: "liter to milliliter", quantity: 0.5, u: unit.Liter, want: 500},
		{name: "cup to milliliter", quantity: 2, u: unit.Cup, want: 473.176},
		{name: "tablespoon to milliliter", quantity: 3, u: unit.Tablespoon, want: 44.3604},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unit.ToBase(tt.quantity, tt.u)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToBaseUnknownUnit(t *testing.T) {
	_, err := unit.ToBase(1, unit.Unit("handful"))
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}

func TestDimension(t *testing.T) {
	massUnits := []unit.Unit{unit.Gram, unit.Kilogram, unit.Ounce, unit.Pound}
	for _, u := range massUnits {
		d, err := u.Dimension()
		require.NoError(t, err)
		assert.Equal(t, unit.DimensionMass, d, "unit %s", u)
	}

	volumeUnits := []unit.Unit{
		unit.Milliliter, unit.Liter, unit.Teaspoon, unit.Tablespoon,
		unit.FluidOunce, unit.Cup, unit.Pint, unit.Quart, unit.Gallon,
	}
	for _, u := range volumeUnits {
		d, err := u.Dimension()
		require.NoError(t, err)
		assert.Equal(t, unit.DimensionVolume, d, "unit %s", u)
	}

	_, err := unit.Unit("pinch").Dimension()
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}

func TestBaseOf(t *testing.T) {
	assert.Equal(t, unit.Gram, unit.BaseOf(unit.DimensionMass))
	assert.Equal(t, unit.Milliliter, unit.BaseOf(unit.DimensionVolume))
}

func TestParse(t *testing.T) {
	u, err := unit.Parse("tbsp")
	require.NoError(t, err)
	assert.Equal(t, unit.Tablespoon, u)

	_, err = unit.Parse("bushel")
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}
