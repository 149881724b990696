package entity

import "time"

// Category nodo de la taxonomía de productos (dos niveles).
// Las categorías padre son fijas; las subcategorías se infieren del nombre del producto.
type Category struct {
	ID        string
	Name      string  // único sin distinguir mayúsculas
	Slug      string  // único
	ParentID  *string // nil si es raíz
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool { return c.ParentID == nil }

// SameParent compara el padre actual con el solicitado (nil == raíz).
func (c *Category) SameParent(parentID *string) bool {
	if c.ParentID == nil || parentID == nil {
		return c.ParentID == nil && parentID == nil
	}
	return *c.ParentID == *parentID
}
