package models

import "time"

// VehicleDB represents a vehicle row in the database
type VehicleDB struct {
	ID             int64     `json:"id" db:"id"`                             // Primary key
	OwnerID        int64     `json:"owner_id" db:"owner_id"`                 // Owning user, cascade-deleted with it
	VIN            string    `json:"vin" db:"vin"`                           // Unique 17-character VIN, uppercase
	Manufacturer   string    `json:"manufacturer" db:"manufacturer"`         // Manufacturer name
	Model          string    `json:"model" db:"model"`                       // Model name
	Body           string    `json:"body" db:"body"`                         // Body style
	Year           int       `json:"year" db:"year"`                         // Production year
	Mileage        int64     `json:"mileage" db:"mileage"`                   // Odometer value, monotonically non-decreasing
	LastUpdateDate time.Time `json:"last_update_date" db:"last_update_date"` // Date of the last mileage update
}

// VehicleCreate carries the fields required to insert a vehicle.
type VehicleCreate struct {
	OwnerID      int64
	VIN          string
	Manufacturer string
	Model        string
	Body         string
	Year         int
	Mileage      int64
}

// VehicleUpdate is a partial update of a vehicle.
type VehicleUpdate struct {
	VIN          *string `json:"vin"`
	Manufacturer *string `json:"manufacturer"`
	Model        *string `json:"model"`
	Body         *string `json:"body"`
	Year         *int    `json:"year"`
}
