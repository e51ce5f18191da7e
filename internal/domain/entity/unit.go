package entity

// Unit unidad de medida de un producto.
type Unit string

const (
	UnitLiters   Unit = "LITERS"
	UnitKg       Unit = "KG"
	UnitGrams    Unit = "GRAMS"
	UnitPieces   Unit = "PIECES"
	UnitCans     Unit = "CANS"
	UnitPackages Unit = "PACKAGES"
)

// Units devuelve las unidades soportadas.
func Units() []Unit {
	return []Unit{UnitLiters, UnitKg, UnitGrams, UnitPieces, UnitCans, UnitPackages}
}

// Valid indica si u es una unidad soportada.
func (u Unit) Valid() bool {
	for _, known := range Units() {
		if u == known {
			return true
		}
	}
	return false
}
