package domain

import "github.com/shopspring/decimal"

// nutrientPlaces is the number of decimal places kept for every stored
// nutrient value.
const nutrientPlaces = 2

// Nutrients holds the running macro values tracked for a dish and for a day.
type Nutrients struct {
	Carb    float64
	Protein float64
	Fat     float64
	Calorie float64
}

// Add returns n + o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return n.combine(o, decimal.Decimal.Add)
}

// Sub returns n - o.
func (n Nutrients) Sub(o Nutrients) Nutrients {
	return n.combine(o, decimal.Decimal.Sub)
}

// Neg returns -n.
func (n Nutrients) Neg() Nutrients {
	return Nutrients{}.Sub(n)
}

// Times multiplies every value by qty.
func (n Nutrients) Times(qty int) Nutrients {
	return n.Ratio(qty, 1)
}

// Ratio scales every value by num/den. den must be positive.
func (n Nutrients) Ratio(num, den int) Nutrients {
	scale := func(v float64) float64 { return scaleValue(v, num, den) }
	return Nutrients{
		Carb:    scale(n.Carb),
		Protein: scale(n.Protein),
		Fat:     scale(n.Fat),
		Calorie: scale(n.Calorie),
	}
}

// Exact returns v at the stored precision, for binding to NUMERIC columns.
func Exact(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(nutrientPlaces)
}

// IsZero reports whether all values are zero.
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}

func (n Nutrients) combine(o Nutrients, op func(decimal.Decimal, decimal.Decimal) decimal.Decimal) Nutrients {
	f := func(a, b float64) float64 {
		return op(decimal.NewFromFloat(a), decimal.NewFromFloat(b)).Round(nutrientPlaces).InexactFloat64()
	}
	return Nutrients{
		Carb:    f(n.Carb, o.Carb),
		Protein: f(n.Protein, o.Protein),
		Fat:     f(n.Fat, o.Fat),
		Calorie: f(n.Calorie, o.Calorie),
	}
}

func scaleValue(v float64, num, den int) float64 {
	return decimal.NewFromFloat(v).
		Mul(decimal.NewFromInt(int64(num))).
		Div(decimal.NewFromInt(int64(den))).
		Round(nutrientPlaces).
		InexactFloat64()
}
