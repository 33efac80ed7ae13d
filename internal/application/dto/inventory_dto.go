package dto

// AddStockRequest alta de un artículo desde el formulario. Solo serial es
// obligatorio; LocationID nil significa sin ubicación asignada.
type AddStockRequest struct {
	Serial     string `form:"serial"`
	Mfg        string `form:"mfg"`
	Dimen      string `form:"dimen"`
	Type       string `form:"type"`
	Modifier   string `form:"modifier"`
	LocationID *int64 `form:"location_id"`
}

// UserResponse usuario para la vista (nunca expone el hash).
type UserResponse struct {
	ID       int64
	Username string
}

// LocationResponse ubicación para la vista.
type LocationResponse struct {
	ID     int64
	Office string
	Zone   string
	Bay    string
}

// StockResponse artículo de stock con su ubicación ya resuelta (puede ser nil).
type StockResponse struct {
	ID       int64
	Serial   string
	Mfg      string
	Dimen    string
	Type     string
	Modifier string
	Location *LocationResponse
}

// InventoryResponse datos de la vista autenticada del índice.
type InventoryResponse struct {
	Users     []UserResponse
	Stock     []StockResponse
	Locations []LocationResponse
}
