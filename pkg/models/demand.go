package models

// DemandRecord is the normalized need for one component article on one
// PO line. NeedQty is rounded to whole units; records at or below epsilon
// are dropped before allocation, so a zero-need record never exists here.
type DemandRecord struct {
	POLine       string   `json:"po_line"`
	DeliveryDate string   `json:"delivery_date"`
	Category     Category `json:"category"`
	Article      string   `json:"article"`
	NeedQty      float64  `json:"need_qty"`
	QtyPer       float64  `json:"qty_per"`
	QtyEA        float64  `json:"qty_ea"`
}
