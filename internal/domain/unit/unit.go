package unit

import "errors"

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrDimensionMismatch = errors.New("unit dimension mismatch")
)

// Dimension is the physical dimension a unit measures. Every unit belongs to
// exactly one dimension; converting across dimensions is an error.
type Dimension string

const (
	DimensionMass   Dimension = "mass"
	DimensionVolume Dimension = "volume"
)

type Unit string

const (
	// Mass units
	Gram     Unit = "g"
	Kilogram Unit = "kg"
	Ounce    Unit = "oz"
	Pound    Unit = "lb"

	// Volume units
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	FluidOunce Unit = "fl_oz"
	Cup        Unit = "cup"
	Pint       Unit = "pint"
	Quart      Unit = "quart"
	Gallon     Unit = "gallon"
)

// Conversion factors to each dimension's base unit: gram for mass,
// milliliter for volume.
var toGram = map[Unit]float64{
	Gram:     1,
	Kilogram: 1000,
	Ounce:    28.3495,
	Pound:    453.592,
}

var toMilliliter = map[Unit]float64{
	Milliliter: 1,
	Liter:      1000,
	Teaspoon:   4.92892,
	Tablespoon: 14.7868,
	FluidOunce: 29.5735,
	Cup:        236.588,
	Pint:       473.176,
	Quart:      946.353,
	Gallon:     3785.41,
}

// Dimension reports which physical dimension the unit belongs to.
func (u Unit) Dimension() (Dimension, error) {
	if _, ok := toGram[u]; ok {
		return DimensionMass, nil
	}
	if _, ok := toMilliliter[u]; ok {
		return DimensionVolume, nil
	}
	return "", ErrUnknownUnit
}

// Factor returns the multiplier that converts one of this unit into its
// dimension's base unit.
func (u Unit) Factor() (float64, error) {
	if f, ok := toGram[u]; ok {
		return f, nil
	}
	if f, ok := toMilliliter[u]; ok {
		return f, nil
	}
	return 0, ErrUnknownUnit
}

// ToBase converts a quantity expressed in u into the base unit of u's
// dimension.
func ToBase(quantity float64, u Unit) (float64, error) {
	f, err := u.Factor()
	if err != nil {
		return 0, err
	}
	return quantity * f, nil
}

// BaseOf returns the base unit of a dimension.
func BaseOf(d Dimension) Unit {
	if d == DimensionMass {
		return Gram
	}
	return Milliliter
}

// Parse validates a unit tag coming from storage or a request body.
func Parse(s string) (Unit, error) {
	u := Unit(s)
	if _, err := u.Dimension(); err != nil {
		return "", err
	}
	return u, nil
}

func (u Unit) String() string { return string(u) }
