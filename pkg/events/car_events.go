package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCarCreated       = "CAR_CREATED"
	EventCarUpdated       = "CAR_UPDATED"
	EventCarDeleted       = "CAR_DELETED"
	EventCarStatusChanged = "CAR_STATUS_CHANGED"
	EventContactReceived  = "CONTACT_RECEIVED"
)

func NewCarCreatedEvent(carId uuid.UUID, brand, model string) Event {
	return BaseEvent{
		Type: EventCarCreated,
		Data: map[string]interface{}{
			"car_id": carId.String(),
			"brand":  brand,
			"model":  model,
		},
		OccurredAt: time.Now(),
	}
}

func NewCarUpdatedEvent(carId uuid.UUID) Event {
	return BaseEvent{
		Type: EventCarUpdated,
		Data: map[string]interface{}{
			"car_id": carId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCarDeletedEvent(carId uuid.UUID) Event {
	return BaseEvent{
		Type: EventCarDeleted,
		Data: map[string]interface{}{
			"car_id": carId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCarStatusChangedEvent(carId uuid.UUID, from, to string) Event {
	return BaseEvent{
		Type: EventCarStatusChanged,
		Data: map[string]interface{}{
			"car_id": carId.String(),
			"from":   from,
			"to":     to,
		},
		OccurredAt: time.Now(),
	}
}

func NewContactReceivedEvent(email string) Event {
	return BaseEvent{
		Type: EventContactReceived,
		Data: map[string]interface{}{
			"email": email,
		},
		OccurredAt: time.Now(),
	}
}
