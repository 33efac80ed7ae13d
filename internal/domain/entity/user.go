package entity

// User representa un usuario del sistema. En este alcance los usuarios solo
// los crea el seed inicial: no hay registro, actualización ni borrado.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
}
