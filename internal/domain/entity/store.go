package entity

import "time"

// Store representa una tienda (sucursal) de la cadena. Es un dato de referencia:
// la ingesta la busca por nombre pero nunca la crea.
type Store struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}
