package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetslot/models"
	"meetslot/services/meeting"
	"meetslot/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stubService struct {
	meeting.MeetingService
	gotDate    string
	gotRequest models.MeetingRequest
	err        error
}

func (s *stubService) QueryForDate(_ context.Context, date string, request models.MeetingRequest) (*meeting.QueryResult, error) {
	s.gotDate = date
	s.gotRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return &meeting.QueryResult{Date: date, Ranges: []models.TimeRange{models.WholeDay}}, nil
}

func newTask(t *testing.T, payload tasks.PrecomputePayload) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewPrecomputeTask(payload, time.Time{})
	if err != nil {
		t.Fatalf("NewPrecomputeTask failed: %v", err)
	}
	return task
}

func TestHandlePrecomputeTask(t *testing.T) {
	svc := &stubService{}
	handler := HandlePrecomputeTask(svc, zap.NewNop())

	payload := tasks.PrecomputePayload{Date: "2025-02-25"}
	payload.Request.Attendees = []string{"A"}
	payload.Request.Duration = 45

	if err := handler(context.Background(), newTask(t, payload)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if svc.gotDate != "2025-02-25" || svc.gotRequest.Duration() != 45 || !svc.gotRequest.IsMandatory("A") {
		t.Errorf("service called with (%q, %+v)", svc.gotDate, svc.gotRequest.Input())
	}
}

func TestHandlePrecomputeTask_InvalidPayloadSkipsRetry(t *testing.T) {
	handler := HandlePrecomputeTask(&stubService{}, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypePrecomputeSlots, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
}

func TestHandlePrecomputeTask_InvalidDateSkipsRetry(t *testing.T) {
	handler := HandlePrecomputeTask(&stubService{err: meeting.ErrInvalidDate}, zap.NewNop())

	err := handler(context.Background(), newTask(t, tasks.PrecomputePayload{Date: "tomorrow"}))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
}

func TestHandlePrecomputeTask_QueryErrorRetries(t *testing.T) {
	boom := errors.New("mongo down")
	handler := HandlePrecomputeTask(&stubService{err: boom}, zap.NewNop())

	err := handler(context.Background(), newTask(t, tasks.PrecomputePayload{Date: "2025-02-25"}))
	if !errors.Is(err, boom) || errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want retryable %v", err, boom)
	}
}
