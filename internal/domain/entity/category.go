package entity

// Category clasificación fija de un producto de la despensa.
// Cada variante tiene asociada una tabla de acciones recomendadas (ver categoryActions).
type Category string

const (
	CategoryWater         Category = "WATER"
	CategoryPreservedFood Category = "PRESERVED_FOOD"
	CategoryDryGoods      Category = "DRY_GOODS"
	CategoryFreezeDried   Category = "FREEZE_DRIED"
	CategoryMedicine      Category = "MEDICINE"
	CategoryFuel          Category = "FUEL"
	CategoryOther         Category = "OTHER"
)

// categoryAction textos de acción recomendada por categoría.
type categoryAction struct {
	approaching string
	expired     string
}

var categoryActions = map[Category]categoryAction{
	CategoryWater: {
		approaching: "Rotate to daily use and refill with fresh stock",
		expired:     "Discard and replace immediately, do not consume",
	},
	CategoryPreservedFood: {
		approaching: "Move to everyday pantry rotation and repurchase for the stash",
		expired:     "Inspect packaging for damage, swelling, or odor before discarding",
	},
	CategoryDryGoods: {
		approaching: "Move to everyday cooking rotation and replace in stash",
		expired:     "Inspect for moisture, pests, or off-odor before discarding",
	},
	CategoryFreezeDried: {
		approaching: "Include in regular meals to rotate and reorder replacement",
		expired:     "Check packaging integrity; if sealed and odor-free may still be usable",
	},
	CategoryMedicine: {
		approaching: "Consult a pharmacist about replacement; do not let this lapse",
		expired:     "Dispose via pharmacy take-back program, do not use",
	},
	CategoryFuel: {
		approaching: "Use in an equipment or generator test run; refill with fresh stock",
		expired:     "Dispose at a hazardous waste facility, do not use in equipment",
	},
	CategoryOther: {
		approaching: "Review item condition and plan for rotation",
		expired:     "Assess condition and replace if necessary",
	},
}

// Categories devuelve todas las categorías en orden de declaración.
func Categories() []Category {
	return []Category{
		CategoryWater, CategoryPreservedFood, CategoryDryGoods, CategoryFreezeDried,
		CategoryMedicine, CategoryFuel, CategoryOther,
	}
}

// Valid indica si c es una categoría conocida.
func (c Category) Valid() bool {
	_, ok := categoryActions[c]
	return ok
}

// ApproachingAction acción sugerida cuando un lote está por vencer.
func (c Category) ApproachingAction() string { return categoryActions[c].approaching }

// ExpiredAction acción sugerida cuando un lote ya venció.
func (c Category) ExpiredAction() string { return categoryActions[c].expired }
