package dto

import "time"

// SkipReason fila descartada por el cargador o por el motor.
type SkipReason struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// RunReport resultado de una corrida de ingesta para una tienda.
// Se registra en el log y se devuelve por CLI (JSON/PDF) y HTTP.
type RunReport struct {
	RunID                string       `json:"run_id"`
	Store                string       `json:"store"`
	Supplier             string       `json:"supplier"`
	RowsRead             int          `json:"rows_read"`
	RowsProcessed        int          `json:"rows_processed"`
	ProductsUpserted     int          `json:"products_upserted"`
	InventoryUpserted    int          `json:"inventory_upserted"`
	CategoriesCreated    int          `json:"categories_created"`
	CategoriesReparented int          `json:"categories_reparented"`
	InventoryPruned      int64        `json:"inventory_pruned"`
	UnresolvedColumns    []string     `json:"unresolved_columns,omitempty"`
	NoOp                 bool         `json:"no_op"`
	Skipped              []SkipReason `json:"skipped"`
	StartedAt            time.Time    `json:"started_at"`
	FinishedAt           time.Time    `json:"finished_at"`
}

// Duration tiempo total de la corrida.
func (r *RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// PreviewRecord fila normalizada sin persistir (comando preview).
type PreviewRecord struct {
	Line           int    `json:"line"`
	Name           string `json:"name"`
	StockCode      string `json:"stockcode,omitempty"`
	UPC            string `json:"upc,omitempty"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	UnitPrice      string `json:"unit_price"`
	Category       string `json:"category,omitempty"`
	ParentCategory string `json:"parent_category"`
	Subcategory    string `json:"subcategory,omitempty"`
}

// PreviewResponse salida del comando preview.
type PreviewResponse struct {
	RowsRead          int             `json:"rows_read"`
	Records           []PreviewRecord `json:"records"`
	Skipped           []SkipReason    `json:"skipped"`
	UnresolvedColumns []string        `json:"unresolved_columns,omitempty"`
}
