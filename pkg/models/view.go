package models

// ReviewRow is one PO line of the computed material-review view, after
// allocation, flag composition and annotation.
type ReviewRow struct {
	POLine          string  `json:"po_line"`
	Article         string  `json:"article"`
	Description     string  `json:"description"`
	DeliveryDate    string  `json:"delivery_date"`
	StatisticalDate string  `json:"statistical_date"`
	QtyEA           string  `json:"qty_ea"`
	Components      BOMLine `json:"components,omitempty"`
	HasComponents   bool    `json:"has_components"`
	Status          string  `json:"status"`
	Flag            Flag    `json:"flag"`
	ShortDetail     string  `json:"short_detail"`
	FSLot           string  `json:"fs_lot"`
	FSStatus        string  `json:"fs_status"`
	FSInfo          string  `json:"fs_info"`
	PONotes         string  `json:"po_notes"`
	FilledCandle    string  `json:"filled_candle"`
	Notes           string  `json:"notes"`
}

// TrackedFields is the fixed field set the change detector compares
// between runs, in report order.
var TrackedFields = []string{
	"Article",
	"QtyEA",
	"DeliveryDate",
	"StatisticalDate",
	"Status",
	"Short_Detail",
	"FS_Lot",
	"FS_Status",
}

// Tracked projects the row onto the tracked-field set as strings.
func (r ReviewRow) Tracked() map[string]string {
	return map[string]string{
		"Article":          r.Article,
		"QtyEA":            r.QtyEA,
		"DeliveryDate":     r.DeliveryDate,
		"StatisticalDate":  r.StatisticalDate,
		"Status":           r.Status,
		"Short_Detail":     r.ShortDetail,
		"FS_Lot":           r.FSLot,
		"FS_Status":        r.FSStatus,
	}
}

// ViewSnapshotRow is the persisted form of a review row: the PO-line key
// plus exactly the tracked fields. The snapshot table is replaced
// wholesale at the end of every run.
type ViewSnapshotRow struct {
	POLine          string `json:"po_line" db:"po_line"`
	Article         string `json:"article" db:"article"`
	QtyEA           string `json:"qty_ea" db:"qty_ea"`
	DeliveryDate    string `json:"delivery_date" db:"delivery_date"`
	StatisticalDate string `json:"statistical_date" db:"statistical_date"`
	Status          string `json:"status" db:"status"`
	ShortDetail     string `json:"short_detail" db:"short_detail"`
	FSLot           string `json:"fs_lot" db:"fs_lot"`
	FSStatus        string `json:"fs_status" db:"fs_status"`
}

// Tracked projects the snapshot row onto the tracked-field set.
func (r ViewSnapshotRow) Tracked() map[string]string {
	return map[string]string{
		"Article":          r.Article,
		"QtyEA":            r.QtyEA,
		"DeliveryDate":     r.DeliveryDate,
		"StatisticalDate":  r.StatisticalDate,
		"Status":           r.Status,
		"Short_Detail":     r.ShortDetail,
		"FS_Lot":           r.FSLot,
		"FS_Status":        r.FSStatus,
	}
}

// Snapshot converts a computed row to its persisted form.
func (r ReviewRow) Snapshot() ViewSnapshotRow {
	return ViewSnapshotRow{
		POLine:          r.POLine,
		Article:         r.Article,
		QtyEA:           r.QtyEA,
		DeliveryDate:    r.DeliveryDate,
		StatisticalDate: r.StatisticalDate,
		Status:          r.Status,
		ShortDetail:     r.ShortDetail,
		FSLot:           r.FSLot,
		FSStatus:        r.FSStatus,
	}
}
