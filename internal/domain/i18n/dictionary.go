// internal/domain/i18n/dictionary.go
package i18n

// Dictionary holds the notice strings the cart layer surfaces to buyers.
// Only phrases the server emits live here; page copy belongs to the frontend.
type Dictionary struct {
	Size                      string
	ThereIs                   string
	ThereAre                  string
	UnitLeft                  string
	UnitsLeft                 string
	QuantityUpdated           string
	HasBeenAddedToTheCart     string
	HasBeenRemovedFromTheCart string
}

var dictionaries = map[Lang]Dictionary{
	LangEN: {
		Size:                      "Size",
		ThereIs:                   "There is",
		ThereAre:                  "There are",
		UnitLeft:                  "unit left",
		UnitsLeft:                 "units left",
		QuantityUpdated:           "Quantity updated",
		HasBeenAddedToTheCart:     "has been added to the cart",
		HasBeenRemovedFromTheCart: "has been removed from the cart",
	},
	LangES: {
		Size:                      "Talla",
		ThereIs:                   "Queda",
		ThereAre:                  "Quedan",
		UnitLeft:                  "unidad",
		UnitsLeft:                 "unidades",
		QuantityUpdated:           "Cantidad actualizada",
		HasBeenAddedToTheCart:     "se ha añadido al carrito",
		HasBeenRemovedFromTheCart: "se ha eliminado del carrito",
	},
}

// Dict returns the dictionary for lang (English on unknown).
func Dict(lang Lang) Dictionary {
	if d, ok := dictionaries[lang]; ok {
		return d
	}
	return dictionaries[LangEN]
}
