package models

import "time"

// MileageEventDB is a standalone odometer reading not tied to any work.
// Cascade-deleted with its vehicle.
type MileageEventDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	VehicleID   int64     `json:"vehicle_id" db:"vehicle_id"`     // Owning vehicle
	MileageDate time.Time `json:"mileage_date" db:"mileage_date"` // Date of the reading
	Mileage     int64     `json:"mileage" db:"mileage"`           // Odometer value
}

// MileageEventCreate carries the fields required to insert a reading.
type MileageEventCreate struct {
	VehicleID   int64
	MileageDate time.Time
	Mileage     int64
}

// MileageEventUpdate is a partial update of a reading.
type MileageEventUpdate struct {
	MileageDate *time.Time `json:"mileage_date"`
	Mileage     *int64     `json:"mileage"`
}
