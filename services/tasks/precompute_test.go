package tasks

import (
	"testing"
	"time"
)

func TestPrecomputeTaskRoundTrip(t *testing.T) {
	payload := PrecomputePayload{Date: "2025-02-25"}
	payload.Request.Attendees = []string{"A"}
	payload.Request.Duration = 30

	task, opts, err := NewPrecomputeTask(payload, time.Time{})
	if err != nil {
		t.Fatalf("NewPrecomputeTask failed: %v", err)
	}
	if task.Type() != TypePrecomputeSlots {
		t.Errorf("Type = %q, want %q", task.Type(), TypePrecomputeSlots)
	}
	if len(opts) != 2 {
		t.Errorf("got %d options, want 2 without ProcessAt", len(opts))
	}

	got, err := ParsePrecomputePayload(task)
	if err != nil {
		t.Fatalf("ParsePrecomputePayload failed: %v", err)
	}
	if got.Date != payload.Date || got.Request.Duration != 30 || len(got.Request.Attendees) != 1 {
		t.Errorf("payload = %+v, want %+v", got, payload)
	}
}

func TestNewPrecomputeTask_Scheduled(t *testing.T) {
	_, opts, err := NewPrecomputeTask(PrecomputePayload{Date: "2025-02-25"}, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("NewPrecomputeTask failed: %v", err)
	}
	if len(opts) != 3 {
		t.Errorf("got %d options, want 3 with ProcessAt", len(opts))
	}
}
