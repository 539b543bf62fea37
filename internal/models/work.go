package models

// WorkType classifies a work entry.
type WorkType string

// Supported work types
const (
	WorkTypeMaintenance WorkType = "MAINTENANCE"
	WorkTypeRepair      WorkType = "REPAIR"
	WorkTypeTuning      WorkType = "TUNING"
)

// Valid reports whether the value is one of the supported work types.
func (t WorkType) Valid() bool {
	switch t {
	case WorkTypeMaintenance, WorkTypeRepair, WorkTypeTuning:
		return true
	}
	return false
}

// WorkDB is a per-vehicle instantiation of a work pattern. Fields are
// copied from the pattern at vehicle creation time, so later pattern
// edits leave existing works unchanged.
type WorkDB struct {
	ID            int64    `json:"id" db:"id"`                         // Primary key
	VehicleID     int64    `json:"vehicle_id" db:"vehicle_id"`         // Owning vehicle, cascade-deleted with it
	Title         string   `json:"title" db:"title"`                   // Copied from the source pattern
	IntervalMonth int      `json:"interval_month" db:"interval_month"` // Copied from the source pattern
	IntervalKM    int      `json:"interval_km" db:"interval_km"`       // Copied from the source pattern
	WorkType      WorkType `json:"work_type" db:"work_type"`           // MAINTENANCE, REPAIR or TUNING
	Note          string   `json:"note" db:"note"`                     // Free-text note
}

// WorkCreate carries the fields required to insert a work.
type WorkCreate struct {
	VehicleID     int64
	Title         string
	IntervalMonth int
	IntervalKM    int
	WorkType      WorkType
	Note          string
}

// WorkUpdate is a partial update of a work.
type WorkUpdate struct {
	Title         *string   `json:"title"`
	IntervalMonth *int      `json:"interval_month"`
	IntervalKM    *int      `json:"interval_km"`
	WorkType      *WorkType `json:"work_type"`
	Note          *string   `json:"note"`
}
