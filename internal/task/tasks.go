package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypePurgeObject = "storage:purge_object"

type PurgeObjectPayload struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
}

// NewPurgeObjectTask creates an Asynq task for removing an orphaned storage
// object after its owning record has been deleted.
func NewPurgeObjectTask(bucket, objectKey string) (*asynq.Task, error) {
	p := PurgeObjectPayload{Bucket: bucket, ObjectKey: objectKey}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal purge-object payload: %w", err)
	}
	return asynq.NewTask(TypePurgeObject, data), nil
}

// ParsePurgeObjectPayload parses the task payload to PurgeObjectPayload.
func ParsePurgeObjectPayload(t *asynq.Task) (PurgeObjectPayload, error) {
	var p PurgeObjectPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PurgeObjectPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
