package dto

// RegistroRequest creates a new customer account. Phone is the login
// identifier and must be unique across all accounts.
type RegistroRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=120"`
	Direccion string  `json:"direccion" validate:"required,max=200"`
	Telefono  string  `json:"telefono" validate:"required,min=6,max=30"`
	Email     *string `json:"email" validate:"omitempty,email,max=150"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Telefono string `json:"telefono" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	Nombre    string  `json:"nombre"`
	Rol       string  `json:"rol"`
	Sucursal  *string `json:"sucursal_id,omitempty"`
	ExpiresIn int     `json:"expires_in"`
}

// ActualizarDireccionRequest changes the shipping address of the logged-in
// account. Past orders keep the address they were placed with.
type ActualizarDireccionRequest struct {
	Direccion string `json:"direccion" validate:"required,max=200"`
}

type PerfilResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email,omitempty"`
	Rol       string  `json:"rol"`
}
