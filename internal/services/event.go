package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

// Error variables
var (
	ErrWorkEventNotFound    = errors.New("work event not found")
	ErrMileageEventNotFound = errors.New("mileage event not found")
)

// WorkEventReader defines read-only operations for work events.
type WorkEventReader interface {
	GetByID(ctx context.Context, id int64) (*models.WorkEventDB, error)
	ListByWork(ctx context.Context, workID int64) ([]models.WorkEventDB, error)
	ListByWorkOrderedByMileage(ctx context.Context, workID int64) ([]models.WorkEventDB, error)
}

// WorkEventWriter defines write operations for work events.
type WorkEventWriter interface {
	Create(ctx context.Context, data models.WorkEventCreate) (*models.WorkEventDB, error)
	Update(ctx context.Context, id int64, upd models.WorkEventUpdate) (*models.WorkEventDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MileageEventReader defines read-only operations for mileage events.
type MileageEventReader interface {
	GetByID(ctx context.Context, id int64) (*models.MileageEventDB, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.MileageEventDB, error)
}

// MileageEventWriter defines write operations for mileage events.
type MileageEventWriter interface {
	Create(ctx context.Context, data models.MileageEventCreate) (*models.MileageEventDB, error)
	Update(ctx context.Context, id int64, upd models.MileageEventUpdate) (*models.MileageEventDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuditMessage is the maintenance-audit record published to Kafka when
// an event is recorded.
type AuditMessage struct {
	ID            string    `json:"id"`                // Message id
	Kind          string    `json:"kind"`              // "work_event" or "mileage_event"
	VehicleID     int64     `json:"vehicle_id"`        // Affected vehicle
	WorkID        int64     `json:"work_id,omitempty"` // Owning work, work events only
	EventID       int64     `json:"event_id"`          // Created event
	Mileage       int64     `json:"mileage"`           // Reported odometer value
	MileageRaised bool      `json:"mileage_raised"`    // Whether the ratchet raised the vehicle mileage
	EventDate     time.Time `json:"event_date"`        // Date carried by the event
	PublishedAt   time.Time `json:"published_at"`      // Publication timestamp
}

// EventService records work and mileage events, applies the mileage
// ratchet and publishes audit messages.
type EventService struct {
	workEvents         WorkEventReader
	workEventWriter    WorkEventWriter
	mileageEvents      MileageEventReader
	mileageEventWriter MileageEventWriter
	works              WorkReader
	vehicles           VehicleReader
	ratchet            MileageRatchet
	kafka              KafkaWriter
}

// NewEventService creates a new EventService instance.
func NewEventService(
	workEvents WorkEventReader,
	workEventWriter WorkEventWriter,
	mileageEvents MileageEventReader,
	mileageEventWriter MileageEventWriter,
	works WorkReader,
	vehicles VehicleReader,
	ratchet MileageRatchet,
	kafka KafkaWriter,
) *EventService {
	return &EventService{
		workEvents:         workEvents,
		workEventWriter:    workEventWriter,
		mileageEvents:      mileageEvents,
		mileageEventWriter: mileageEventWriter,
		works:              works,
		vehicles:           vehicles,
		ratchet:            ratchet,
		kafka:              kafka,
	}
}

// CreateWorkEvent records a maintenance occurrence on a work. The
// vehicle is resolved transitively through the work and its mileage is
// ratcheted. Insert and ratchet are sequenced, not atomic: a ratchet
// failure leaves the event in place and is only logged.
func (svc *EventService) CreateWorkEvent(ctx context.Context, data models.WorkEventCreate) (*models.WorkEventDB, error) {
	work, err := svc.works.GetByID(ctx, data.WorkID)
	if err != nil {
		logger.Log.Errorw("failed to get work", "err", err)
		return nil, err
	}
	if work == nil {
		return nil, ErrWorkNotFound
	}

	event, err := svc.workEventWriter.Create(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to create work event", "err", err)
		return nil, err
	}

	raised := svc.applyRatchet(ctx, work.VehicleID, event.Mileage)
	svc.publish(ctx, AuditMessage{
		Kind:          "work_event",
		VehicleID:     work.VehicleID,
		WorkID:        work.ID,
		EventID:       event.ID,
		Mileage:       event.Mileage,
		MileageRaised: raised,
		EventDate:     event.WorkDate,
	})

	return event, nil
}

// CreateMileageEvent records a standalone odometer reading and
// ratchets the vehicle mileage.
func (svc *EventService) CreateMileageEvent(ctx context.Context, data models.MileageEventCreate) (*models.MileageEventDB, error) {
	vehicle, err := svc.vehicles.GetByID(ctx, data.VehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	event, err := svc.mileageEventWriter.Create(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to create mileage event", "err", err)
		return nil, err
	}

	raised := svc.applyRatchet(ctx, event.VehicleID, event.Mileage)
	svc.publish(ctx, AuditMessage{
		Kind:          "mileage_event",
		VehicleID:     event.VehicleID,
		EventID:       event.ID,
		Mileage:       event.Mileage,
		MileageRaised: raised,
		EventDate:     event.MileageDate,
	})

	return event, nil
}

// GetWorkEvent returns a single work event.
func (svc *EventService) GetWorkEvent(ctx context.Context, id int64) (*models.WorkEventDB, error) {
	event, err := svc.workEvents.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get work event", "err", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrWorkEventNotFound
	}
	return event, nil
}

// ListWorkEvents returns the events of an existing work, newest first.
func (svc *EventService) ListWorkEvents(ctx context.Context, workID int64) ([]models.WorkEventDB, error) {
	work, err := svc.works.GetByID(ctx, workID)
	if err != nil {
		logger.Log.Errorw("failed to get work", "err", err)
		return nil, err
	}
	if work == nil {
		return nil, ErrWorkNotFound
	}
	return svc.workEvents.ListByWork(ctx, workID)
}

// UpdateWorkEvent applies a partial update. The ratchet is not
// re-applied on updates, only on creation.
func (svc *EventService) UpdateWorkEvent(ctx context.Context, id int64, upd models.WorkEventUpdate) (*models.WorkEventDB, error) {
	event, err := svc.workEventWriter.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update work event", "err", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrWorkEventNotFound
	}
	return event, nil
}

// DeleteWorkEvent removes a work event.
func (svc *EventService) DeleteWorkEvent(ctx context.Context, id int64) error {
	deleted, err := svc.workEventWriter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete work event", "err", err)
		return err
	}
	if !deleted {
		return ErrWorkEventNotFound
	}
	return nil
}

// GetMileageEvent returns a single mileage event.
func (svc *EventService) GetMileageEvent(ctx context.Context, id int64) (*models.MileageEventDB, error) {
	event, err := svc.mileageEvents.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get mileage event", "err", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrMileageEventNotFound
	}
	return event, nil
}

// ListMileageEvents returns the readings of an existing vehicle,
// newest first.
func (svc *EventService) ListMileageEvents(ctx context.Context, vehicleID int64) ([]models.MileageEventDB, error) {
	vehicle, err := svc.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return svc.mileageEvents.ListByVehicle(ctx, vehicleID)
}

// UpdateMileageEvent applies a partial update.
func (svc *EventService) UpdateMileageEvent(ctx context.Context, id int64, upd models.MileageEventUpdate) (*models.MileageEventDB, error) {
	event, err := svc.mileageEventWriter.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update mileage event", "err", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrMileageEventNotFound
	}
	return event, nil
}

// DeleteMileageEvent removes a mileage event.
func (svc *EventService) DeleteMileageEvent(ctx context.Context, id int64) error {
	deleted, err := svc.mileageEventWriter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete mileage event", "err", err)
		return err
	}
	if !deleted {
		return ErrMileageEventNotFound
	}
	return nil
}

func (svc *EventService) applyRatchet(ctx context.Context, vehicleID, mileage int64) bool {
	raised, err := svc.ratchet.Apply(ctx, vehicleID, mileage)
	if err != nil {
		logger.Log.Errorw("mileage ratchet failed", "vehicle_id", vehicleID, "mileage", mileage, "err", err)
		return false
	}
	return raised
}

// publish sends the audit message to Kafka. The audit stream is best
// effort: failures are logged and never fail the request.
func (svc *EventService) publish(ctx context.Context, msg AuditMessage) {
	if svc.kafka == nil {
		return
	}

	msg.ID = uuid.New().String()
	msg.PublishedAt = time.Now().UTC()

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit message", "err", err)
		return
	}

	err = svc.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Kind),
		Value: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish audit message", "err", err)
	}
}
