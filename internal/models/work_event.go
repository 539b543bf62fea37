package models

import "time"

// WorkEventDB is a recorded occurrence of a work being performed, with
// cost and mileage at time of service. Cascade-deleted with its work.
type WorkEventDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	WorkID    int64     `json:"work_id" db:"work_id"`       // Owning work
	WorkDate  time.Time `json:"work_date" db:"work_date"`   // Date the work was performed
	Mileage   int64     `json:"mileage" db:"mileage"`       // Odometer value at time of service
	PartPrice float64   `json:"part_price" db:"part_price"` // Parts cost
	WorkPrice float64   `json:"work_price" db:"work_price"` // Labor cost
	Note      string    `json:"note" db:"note"`             // Free-text note
}

// WorkEventCreate carries the fields required to insert a work event.
type WorkEventCreate struct {
	WorkID    int64
	WorkDate  time.Time
	Mileage   int64
	PartPrice float64
	WorkPrice float64
	Note      string
}

// WorkEventUpdate is a partial update of a work event. Updates do not
// re-apply the mileage ratchet; only event creation does.
type WorkEventUpdate struct {
	WorkDate  *time.Time `json:"work_date"`
	Mileage   *int64     `json:"mileage"`
	PartPrice *float64   `json:"part_price"`
	WorkPrice *float64   `json:"work_price"`
	Note      *string    `json:"note"`
}
