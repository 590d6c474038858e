package tasks

import (
	"encoding/json"
	"time"

	"meetslot/models"

	"github.com/hibiken/asynq"
)

const TypePrecomputeSlots = "meeting:precompute"

// PrecomputePayload asks the worker to resolve and cache one request.
type PrecomputePayload struct {
	Date    string                     `json:"date"`
	Request models.MeetingRequestInput `json:"request"`
}

// NewPrecomputeTask builds the task. A zero processAt runs it immediately.
func NewPrecomputeTask(payload PrecomputePayload, processAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePrecomputeSlots, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}
	if !processAt.IsZero() {
		opts = append(opts, asynq.ProcessAt(processAt))
	}
	return task, opts, nil
}

// ParsePrecomputePayload decodes a task payload.
func ParsePrecomputePayload(task *asynq.Task) (PrecomputePayload, error) {
	var p PrecomputePayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
