package dto

// CrearSucursalRequest promotes an existing account to branch role and
// creates its branch profile.
type CrearSucursalRequest struct {
	ClienteID string `json:"cliente_id" validate:"required,uuid4"`
	Nombre    string `json:"nombre" validate:"required,min=2,max=120"`
	Direccion string `json:"direccion" validate:"required,max=200"`
}

type SucursalResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

// StockSucursalResponse is one row of a branch's inventory view.
type StockSucursalResponse struct {
	ProductoID string `json:"producto_id"`
	Producto   string `json:"producto"`
	Cantidad   int    `json:"cantidad"`
}
