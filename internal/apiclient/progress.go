package apiclient

import (
	"context"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// ProgressAPI wraps the completion and progress-aggregation endpoints.
type ProgressAPI struct {
	client *Client
}

func NewProgressAPI(client *Client) *ProgressAPI {
	return &ProgressAPI{client: client}
}

type completionRequest struct {
	Date         string `json:"date"` // "2006-01-02"
	ExerciseName string `json:"exerciseName,omitempty"`
}

// MarkExerciseCompleted records a single exercise completion.
func (a *ProgressAPI) MarkExerciseCompleted(ctx context.Context, date, exerciseName string) error {
	return a.client.do(ctx, http.MethodPost, "/progress/exercises", completionRequest{Date: date, ExerciseName: exerciseName}, nil)
}

// MarkDayCompleted records a whole-day completion.
func (a *ProgressAPI) MarkDayCompleted(ctx context.Context, date string) error {
	return a.client.do(ctx, http.MethodPost, "/progress/days", completionRequest{Date: date}, nil)
}

// SyncSnapshot pushes the full local completion state to the aggregator.
func (a *ProgressAPI) SyncSnapshot(ctx context.Context, snapshot *domain.ProgressSnapshot) error {
	return a.client.do(ctx, http.MethodPost, "/progress/sync", snapshot, nil)
}

// GetSummary fetches the dashboard aggregate.
func (a *ProgressAPI) GetSummary(ctx context.Context) (*domain.ProgressSummary, error) {
	var summary domain.ProgressSummary
	if err := a.client.do(ctx, http.MethodGet, "/progress/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
