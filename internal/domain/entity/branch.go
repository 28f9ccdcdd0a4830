package entity

// Branch representa una sucursal (ubicación física o lógica de inventario).
type Branch struct {
	ID   int64
	Name string
}
