package domain

// FoodIdentity names a food either by its catalog key or, when the food is
// not in the catalog, by free text.
type FoodIdentity struct {
	CatalogKey *int64
	Name       string
}

// IsValid reports whether the identity can be priced.
func (f FoodIdentity) IsValid() bool {
	return f.CatalogKey != nil || f.Name != ""
}

// Matches reports whether o names the same food as f. Catalog keys are
// compared when o carries one, exact names otherwise.
func (f FoodIdentity) Matches(o FoodIdentity) bool {
	if o.CatalogKey != nil {
		return f.CatalogKey != nil && *f.CatalogKey == *o.CatalogKey
	}
	return f.Name == o.Name
}

// FoodFacts are the per-unit nutrient facts of a catalog food.
type FoodFacts struct {
	Label   int64
	Name    string
	Size    float64
	Unit    string
	PerUnit Nutrients
}

// Portion is a priced quantity of food: the snapshot stored on a dish.
type Portion struct {
	Nutrients Nutrients
	Size      float64
	Unit      string
}

// Price multiplies the per-unit facts by qty.
func (f FoodFacts) Price(qty int) Portion {
	return Portion{
		Nutrients: f.PerUnit.Times(qty),
		Size:      scaleValue(f.Size, qty, 1),
		Unit:      f.Unit,
	}
}

// FallbackFacts are the facts used for free-text food: a flat calorie
// value per unit and no macros.
func FallbackFacts(name string, caloriePerUnit float64) FoodFacts {
	return FoodFacts{
		Name:    name,
		PerUnit: Nutrients{Calorie: caloriePerUnit},
	}
}

// Scale returns the portion scaled by num/den. den must be positive.
func (p Portion) Scale(num, den int) Portion {
	return Portion{
		Nutrients: p.Nutrients.Ratio(num, den),
		Size:      scaleValue(p.Size, num, den),
		Unit:      p.Unit,
	}
}

// Add combines two portions of the same food.
func (p Portion) Add(o Portion) Portion {
	return Portion{
		Nutrients: p.Nutrients.Add(o.Nutrients),
		Size:      scaleValue(p.Size+o.Size, 1, 1),
		Unit:      p.Unit,
	}
}
