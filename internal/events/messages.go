package events

import (
	"encoding/json"
	"time"
)

// MutationMessage records one state mutation for the audit worker. It carries
// only identifiers; the worker never needs the full entity payload.
type MutationMessage struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entityId"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMutationMessage(entity, action, entityID string) *MutationMessage {
	return &MutationMessage{
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Timestamp: time.Now(),
	}
}

func (m *MutationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MutationMessageFromJSON(data []byte) (*MutationMessage, error) {
	var msg MutationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
