package records

import (
	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

const (
	maxNutritionCalories = 100_000_000.0
	maxMacronutrientG    = 100_000.0
	maxMicronutrientG    = 100.0
)

// Nutrition is food or drink consumed over a span. Every nutrient is optional.
type Nutrition struct {
	Name     *string  `json:"name,omitempty"`
	MealType MealType `json:"meal_type"`

	Energy        *units.Energy `json:"energy,omitempty"`
	EnergyFromFat *units.Energy `json:"energy_from_fat,omitempty"`

	Protein            *units.Mass `json:"protein,omitempty"`
	TotalCarbohydrate  *units.Mass `json:"total_carbohydrate,omitempty"`
	TotalFat           *units.Mass `json:"total_fat,omitempty"`
	SaturatedFat       *units.Mass `json:"saturated_fat,omitempty"`
	UnsaturatedFat     *units.Mass `json:"unsaturated_fat,omitempty"`
	MonounsaturatedFat *units.Mass `json:"monounsaturated_fat,omitempty"`
	PolyunsaturatedFat *units.Mass `json:"polyunsaturated_fat,omitempty"`
	TransFat           *units.Mass `json:"trans_fat,omitempty"`
	DietaryFiber       *units.Mass `json:"dietary_fiber,omitempty"`
	Sugar              *units.Mass `json:"sugar,omitempty"`

	Biotin          *units.Mass `json:"biotin,omitempty"`
	Caffeine        *units.Mass `json:"caffeine,omitempty"`
	Calcium         *units.Mass `json:"calcium,omitempty"`
	Chloride        *units.Mass `json:"chloride,omitempty"`
	Cholesterol     *units.Mass `json:"cholesterol,omitempty"`
	Chromium        *units.Mass `json:"chromium,omitempty"`
	Copper          *units.Mass `json:"copper,omitempty"`
	Folate          *units.Mass `json:"folate,omitempty"`
	FolicAcid       *units.Mass `json:"folic_acid,omitempty"`
	Iodine          *units.Mass `json:"iodine,omitempty"`
	Iron            *units.Mass `json:"iron,omitempty"`
	Magnesium       *units.Mass `json:"magnesium,omitempty"`
	Manganese       *units.Mass `json:"manganese,omitempty"`
	Molybdenum      *units.Mass `json:"molybdenum,omitempty"`
	Niacin          *units.Mass `json:"niacin,omitempty"`
	PantothenicAcid *units.Mass `json:"pantothenic_acid,omitempty"`
	Phosphorus      *units.Mass `json:"phosphorus,omitempty"`
	Potassium       *units.Mass `json:"potassium,omitempty"`
	Riboflavin      *units.Mass `json:"riboflavin,omitempty"`
	Selenium        *units.Mass `json:"selenium,omitempty"`
	Sodium          *units.Mass `json:"sodium,omitempty"`
	Thiamin         *units.Mass `json:"thiamin,omitempty"`
	VitaminA        *units.Mass `json:"vitamin_a,omitempty"`
	VitaminB12      *units.Mass `json:"vitamin_b12,omitempty"`
	VitaminB6       *units.Mass `json:"vitamin_b6,omitempty"`
	VitaminC        *units.Mass `json:"vitamin_c,omitempty"`
	VitaminD        *units.Mass `json:"vitamin_d,omitempty"`
	VitaminE        *units.Mass `json:"vitamin_e,omitempty"`
	VitaminK        *units.Mass `json:"vitamin_k,omitempty"`
	Zinc            *units.Mass `json:"zinc,omitempty"`
}

type nutrient struct {
	name  string
	value **units.Mass
	max   float64
}

// nutrients lists every mass field with its field name and upper bound.
func (p *Nutrition) nutrients() []nutrient {
	return []nutrient{
		{"protein", &p.Protein, maxMacronutrientG},
		{"totalCarbohydrate", &p.TotalCarbohydrate, maxMacronutrientG},
		{"totalFat", &p.TotalFat, maxMacronutrientG},
		{"saturatedFat", &p.SaturatedFat, maxMacronutrientG},
		{"unsaturatedFat", &p.UnsaturatedFat, maxMacronutrientG},
		{"monounsaturatedFat", &p.MonounsaturatedFat, maxMacronutrientG},
		{"polyunsaturatedFat", &p.PolyunsaturatedFat, maxMacronutrientG},
		{"transFat", &p.TransFat, maxMacronutrientG},
		{"dietaryFiber", &p.DietaryFiber, maxMacronutrientG},
		{"sugar", &p.Sugar, maxMacronutrientG},
		{"biotin", &p.Biotin, maxMicronutrientG},
		{"caffeine", &p.Caffeine, maxMicronutrientG},
		{"calcium", &p.Calcium, maxMicronutrientG},
		{"chloride", &p.Chloride, maxMicronutrientG},
		{"cholesterol", &p.Cholesterol, maxMicronutrientG},
		{"chromium", &p.Chromium, maxMicronutrientG},
		{"copper", &p.Copper, maxMicronutrientG},
		{"folate", &p.Folate, maxMicronutrientG},
		{"folicAcid", &p.FolicAcid, maxMicronutrientG},
		{"iodine", &p.Iodine, maxMicronutrientG},
		{"iron", &p.Iron, maxMicronutrientG},
		{"magnesium", &p.Magnesium, maxMicronutrientG},
		{"manganese", &p.Manganese, maxMicronutrientG},
		{"molybdenum", &p.Molybdenum, maxMicronutrientG},
		{"niacin", &p.Niacin, maxMicronutrientG},
		{"pantothenicAcid", &p.PantothenicAcid, maxMicronutrientG},
		{"phosphorus", &p.Phosphorus, maxMicronutrientG},
		{"potassium", &p.Potassium, maxMicronutrientG},
		{"riboflavin", &p.Riboflavin, maxMicronutrientG},
		{"selenium", &p.Selenium, maxMicronutrientG},
		{"sodium", &p.Sodium, maxMicronutrientG},
		{"thiamin", &p.Thiamin, maxMicronutrientG},
		{"vitaminA", &p.VitaminA, maxMicronutrientG},
		{"vitaminB12", &p.VitaminB12, maxMicronutrientG},
		{"vitaminB6", &p.VitaminB6, maxMicronutrientG},
		{"vitaminC", &p.VitaminC, maxMicronutrientG},
		{"vitaminD", &p.VitaminD, maxMicronutrientG},
		{"vitaminE", &p.VitaminE, maxMicronutrientG},
		{"vitaminK", &p.VitaminK, maxMicronutrientG},
		{"zinc", &p.Zinc, maxMicronutrientG},
	}
}

func (Nutrition) RecordType() RecordType { return TypeNutrition }
func (Nutrition) interval()              {}

func (p Nutrition) normalize() Payload {
	out := p
	out.Name = clonePtr(p.Name)
	out.Energy = clonePtr(p.Energy)
	out.EnergyFromFat = clonePtr(p.EnergyFromFat)
	for _, n := range out.nutrients() {
		*n.value = clonePtr(*n.value)
	}
	return out
}

func (p Nutrition) schema(span) schema {
	checks := []error{
		validation.RequireInRangeIfExists(optional(p.Energy, units.Energy.InCalories), 0, maxNutritionCalories, "energy"),
		validation.RequireInRangeIfExists(optional(p.EnergyFromFat, units.Energy.InCalories), 0, maxNutritionCalories, "energyFromFat"),
	}
	for _, n := range p.nutrients() {
		checks = append(checks, validation.RequireInRangeIfExists(optional(*n.value, units.Mass.InGrams), 0, n.max, n.name))
	}
	checks = append(checks, validateEnum(p.MealType, validMealTypes, "mealType"))
	return rules(checks...)
}

func (p Nutrition) fill(r *internalrecord.Record) {
	r.SetOptionalString("name", p.Name)
	r.SetInt("mealType", int64(p.MealType))
	r.SetOptionalValue("energy", optional(p.Energy, units.Energy.InCalories))
	r.SetOptionalValue("energyFromFat", optional(p.EnergyFromFat, units.Energy.InCalories))
	for _, n := range p.nutrients() {
		r.SetOptionalValue(n.name, optional(*n.value, units.Mass.InGrams))
	}
}
