package repository

// Scope es el filtro de propiedad que los listados aplican en SQL.
// El zero value no restringe nada (vista de admin). Lo construye el guard de
// autorización según el rol del llamador; los repos solo lo traducen a WHERE.
type Scope struct {
	UserID     string // limita a registros con created_by o assigned_to = UserID
	CustomerID string // limita a registros con customer_id = CustomerID
}

// IsAll indica si el scope no impone restricción.
func (s Scope) IsAll() bool {
	return s.UserID == "" && s.CustomerID == ""
}
