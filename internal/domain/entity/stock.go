package entity

// Stock representa un artículo de inventario, opcionalmente colocado en una
// Location. La referencia es no-propietaria (muchos-a-uno): se resuelve por
// lookup al listar, nunca se materializa aquí.
type Stock struct {
	ID       int64
	Serial   string // requerido, único
	Mfg      string
	Dimen    string
	Type     string
	Modifier string
	// LocationID es nullable: nil significa stock sin ubicación asignada.
	LocationID *int64
}
