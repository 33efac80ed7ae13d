package entity

import "fmt"

// Location representa un espacio físico de almacenamiento (oficina/zona/bahía).
// Se crea en el seed y es de solo lectura después; posee cero o más Stock.
type Location struct {
	ID     int64
	Office string // clave natural del seed, única
	Zone   string
	Bay    string
}

// Code devuelve la etiqueta legible de la ubicación, p. ej. "TPA-GAR-A".
func (l Location) Code() string {
	return fmt.Sprintf("%s-%s-%s", l.Office, l.Zone, l.Bay)
}
