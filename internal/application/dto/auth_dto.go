package dto

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
