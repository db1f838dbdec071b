package models

// POLine is one purchase-order line item after ingestion. Key is the
// display form "order-line"; Order and Line are the normalized halves.
type POLine struct {
	Key             string  `json:"po_line" db:"po_line"`
	Order           string  `json:"order" db:"order_no"`
	Line            string  `json:"line" db:"line_no"`
	Article         string  `json:"article" db:"article"`
	Description     string  `json:"description" db:"description"`
	DeliveryDate    string  `json:"delivery_date" db:"delivery_date"`
	StatisticalDate string  `json:"statistical_date" db:"statistical_date"`
	QtyEA           float64 `json:"qty_ea" db:"qty_ea"`
	QtyEAText       string  `json:"qty_ea_text" db:"qty_ea_text"`
	OpenQty         float64 `json:"open_qty" db:"open_qty"`
}
