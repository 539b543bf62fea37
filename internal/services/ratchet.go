package services

import "context"

// VehicleMileageWriter raises a vehicle's stored odometer value.
type VehicleMileageWriter interface {
	UpdateMileage(ctx context.Context, id int64, mileage int64) (bool, error)
}

// MileageRatchet decides how a reported event mileage affects the
// owning vehicle's odometer. It is an interface so the policy can be
// replaced (e.g. by one that trusts the most recent event date) without
// touching event creation.
type MileageRatchet interface {
	Apply(ctx context.Context, vehicleID int64, mileage int64) (bool, error)
}

// HighestWinsRatchet raises the vehicle mileage whenever the reported
// value is strictly greater than the stored one, regardless of event
// dates: an old event with a higher reading still wins. Lower or equal
// values never lower it.
type HighestWinsRatchet struct {
	vehicles VehicleMileageWriter
}

// NewHighestWinsRatchet creates the default ratchet policy.
func NewHighestWinsRatchet(vehicles VehicleMileageWriter) *HighestWinsRatchet {
	return &HighestWinsRatchet{vehicles: vehicles}
}

// Apply reports whether the vehicle mileage was raised.
func (p *HighestWinsRatchet) Apply(ctx context.Context, vehicleID int64, mileage int64) (bool, error) {
	return p.vehicles.UpdateMileage(ctx, vehicleID, mileage)
}
