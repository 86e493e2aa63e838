package dto

// LoginRequest entrada para login de usuarios internos y de clientes del portal.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el bearer token (se devuelve una sola vez) y el perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ProfileResponse perfil del actor autenticado (usuario o cliente, sin password).
type ProfileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}
