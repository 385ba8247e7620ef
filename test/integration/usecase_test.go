package integration

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/response"
	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
	"github.com/schedule-lookup/schedule-lookup-service/test/mock"
	"github.com/schedule-lookup/schedule-lookup-service/test/testutil"
)

// TestScheduleUseCase_ExportIsUnpaginated tests that Export returns every match, sorted.
func TestScheduleUseCase_ExportIsUnpaginated(t *testing.T) {
	provider := mock.NewProvider("mock").WithSchedules(mock.SampleSchedules(120))
	uc := usecase.NewScheduleUseCase(provider, nil, nil)

	all, err := uc.Export(context.Background(), domain.ScheduleFilter{Sort: domain.SortByTransit})

	require.NoError(t, err)
	assert.Len(t, all, 120)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].TransitDays, all[i].TransitDays)
	}
	assert.Equal(t, 1, provider.CallCount())
}

// TestScheduleUseCase_ProviderTimeout tests that a slow provider surfaces as a gateway timeout.
func TestScheduleUseCase_ProviderTimeout(t *testing.T) {
	provider := mock.NewProvider("slow").
		WithDelay(500 * time.Millisecond).
		WithSchedules(mock.SampleSchedules(3))
	ts := NewTestServerWithConfig(t, provider, &usecase.Config{ProviderTimeout: 20 * time.Millisecond})

	start := time.Now()
	resp := ts.Schedules(nil)
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	assert.Less(t, elapsed, 400*time.Millisecond, "request must not wait for the slow provider")

	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeTimeout, detail.Code)
}

// TestScheduleUseCase_ProviderPanic tests that a panicking provider becomes an internal error.
func TestScheduleUseCase_ProviderPanic(t *testing.T) {
	ts := NewTestServer(t, mock.NewProvider("broken").WithPanic("index out of range"))

	resp := ts.Schedules(nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeInternalError, detail.Code)
	assert.NotEmpty(t, detail.RequestID)
}

// TestScheduleUseCase_ErrorMapping tests how provider failures reach the client.
func TestScheduleUseCase_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"rate limited", domain.NewRateLimitError("slow down", "up-1"), http.StatusTooManyRequests, response.CodeRateLimited},
		{"upstream", &domain.UpstreamAPIError{Status: 500, Message: "HTTP 500: Internal Server Error"}, http.StatusBadGateway, response.CodeUpstreamError},
		{"network", domain.NewNetworkError(errors.New("dial tcp: connection refused")), http.StatusServiceUnavailable, response.CodeNetworkError},
		{"missing ports", errors.Join(domain.ErrInvalidRequest, errors.New("origin and destination are required")), http.StatusBadRequest, response.CodeValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(t, mock.NewProvider("mock").WithError(tt.err))

			resp := ts.Schedules(Query("origin", "EGALY", "destination", "MATNG"))

			assert.Equal(t, tt.wantStatus, resp.Code)
			detail, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

// TestScheduleUseCase_CancelledRequest tests that a cancelled caller context stops the lookup.
func TestScheduleUseCase_CancelledRequest(t *testing.T) {
	provider := mock.NewProvider("slow").WithDelay(time.Second)
	uc := usecase.NewScheduleUseCase(provider, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := uc.List(ctx, domain.ScheduleFilter{}, domain.Page{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestScheduleUseCase_ResultsAreCopies tests that callers cannot mutate provider data.
func TestScheduleUseCase_ResultsAreCopies(t *testing.T) {
	source := mock.SampleSchedules(3)
	uc := usecase.NewScheduleUseCase(mock.NewProvider("mock").WithSchedules(source), nil, nil)

	list, err := uc.List(context.Background(), domain.ScheduleFilter{}, domain.Page{})
	require.NoError(t, err)
	list.Items[0].Vessel = "CHANGED"

	again, err := uc.List(context.Background(), domain.ScheduleFilter{}, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, "VESSEL 1", again.Items[0].Vessel)
	assert.Equal(t, []string{"SCH-0001", "SCH-0002", "SCH-0003"}, testutil.IDs(again.Items))
}
