package models

// FunctionKey identifies one of the closed set of operational duties an
// employee can be assigned for a shift. Distinct from the access-control Role.
type FunctionKey string

const (
	// FunctionRecepcion is the front-desk duty.
	FunctionRecepcion FunctionKey = "recepcion"
	// FunctionLimpieza is the cleaning duty.
	FunctionLimpieza FunctionKey = "limpieza"
	// FunctionCocina is the kitchen duty.
	FunctionCocina FunctionKey = "cocina"
	// FunctionMantenimiento is the maintenance duty.
	FunctionMantenimiento FunctionKey = "mantenimiento"
	// FunctionAdministracion is the administration duty.
	FunctionAdministracion FunctionKey = "administracion"
)

// functionDisplayNames maps each function key to its human label.
var functionDisplayNames = map[FunctionKey]string{
	FunctionRecepcion:      "Recepción",
	FunctionLimpieza:       "Limpieza",
	FunctionCocina:         "Cocina",
	FunctionMantenimiento:  "Mantenimiento",
	FunctionAdministracion: "Administración",
}

// Functions returns the known function keys in display order.
func Functions() []FunctionKey {
	return []FunctionKey{
		FunctionRecepcion,
		FunctionLimpieza,
		FunctionCocina,
		FunctionMantenimiento,
		FunctionAdministracion,
	}
}

// Valid reports whether f is one of the known function keys.
func (f FunctionKey) Valid() bool {
	_, ok := functionDisplayNames[f]
	return ok
}

// DisplayName returns the human label for the function key, or the raw key
// when it is unknown.
func (f FunctionKey) DisplayName() string {
	if name, ok := functionDisplayNames[f]; ok {
		return name
	}

	return string(f)
}
