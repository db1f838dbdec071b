package models

// ScreeningStatus is the fragrance-screening subsystem's answer for one
// PO line (or whole order): the lot under test and its current status.
type ScreeningStatus struct {
	Lot    string `json:"fs_lot" db:"fs_lot"`
	Status string `json:"fs_status" db:"fs_status"`
}

// Info renders the compact "FS: Lot X, Status" annotation shown on the
// review view, empty when nothing is known.
func (s ScreeningStatus) Info() string {
	if s.Lot == "" && s.Status == "" {
		return ""
	}
	out := "FS:"
	if s.Lot != "" {
		out += " Lot " + s.Lot
	}
	if s.Lot != "" && s.Status != "" {
		out += ","
	}
	if s.Status != "" {
		out += " " + s.Status
	}
	return out
}
