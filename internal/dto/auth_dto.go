package dto

type LoginRequest struct {
	Usuario    string `json:"usuario"    validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}

type CrearUsuarioRequest struct {
	Username   string `json:"usuario"    validate:"required,min=3"`
	Nombre     string `json:"nombre"     validate:"required"`
	Contrasena string `json:"contrasena" validate:"required,min=8"`
	Rol        string `json:"rol"        validate:"required,oneof=operador administrador"`
}
