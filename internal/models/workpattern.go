package models

// WorkPatternDB is a reusable maintenance-schedule template. Patterns
// form a global library: they are not tied to any vehicle.
type WorkPatternDB struct {
	ID            int64  `json:"id" db:"id"`                         // Primary key
	Title         string `json:"title" db:"title"`                   // Maintenance type name
	IntervalMonth int    `json:"interval_month" db:"interval_month"` // Recurrence interval in months
	IntervalKM    int    `json:"interval_km" db:"interval_km"`       // Recurrence interval in kilometers
}

// WorkPatternCreate carries the fields required to insert a pattern.
type WorkPatternCreate struct {
	Title         string
	IntervalMonth int
	IntervalKM    int
}

// WorkPatternUpdate is a partial update of a pattern. Edits do not
// retroactively change works already seeded from it.
type WorkPatternUpdate struct {
	Title         *string `json:"title"`
	IntervalMonth *int    `json:"interval_month"`
	IntervalKM    *int    `json:"interval_km"`
}
