package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/api/handlers"
	"github.com/shrutirout/foxdeal/internal/api/handlers/mocks"
	"github.com/shrutirout/foxdeal/internal/engine"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

func TestSweepHandler(t *testing.T) {
	t.Parallel()

	result := domain.SweepResult{
		Total: 5, Updated: 4, Failed: 1, PriceChanges: 2, AlertsSent: 1,
		Duration: 1500 * time.Millisecond,
	}

	tests := []struct {
		name       string
		secret     string
		method     string
		header     string
		setupMock  func(*mocks.MockSweeper)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "post with secret runs sweep",
			secret: "cron-s3cret",
			method: http.MethodPost,
			header: "Authorization: Bearer cron-s3cret",
			setupMock: func(m *mocks.MockSweeper) {
				m.EXPECT().RunSweep(mock.Anything).Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"priceChanges":2`,
		},
		{
			name:   "get with secret runs sweep",
			secret: "cron-s3cret",
			method: http.MethodGet,
			header: "Authorization: Bearer cron-s3cret",
			setupMock: func(m *mocks.MockSweeper) {
				m.EXPECT().RunSweep(mock.Anything).Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alertsSent":1`,
		},
		{
			name:       "wrong secret returns 401",
			secret:     "cron-s3cret",
			method:     http.MethodPost,
			header:     "Authorization: Bearer guess",
			setupMock:  func(_ *mocks.MockSweeper) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header returns 401",
			secret:     "cron-s3cret",
			method:     http.MethodPost,
			setupMock:  func(_ *mocks.MockSweeper) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unset secret rejects everything",
			secret:     "",
			method:     http.MethodPost,
			header:     "Authorization: Bearer ",
			setupMock:  func(_ *mocks.MockSweeper) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "overlapping sweep returns 409",
			secret: "cron-s3cret",
			method: http.MethodPost,
			header: "Authorization: Bearer cron-s3cret",
			setupMock: func(m *mocks.MockSweeper) {
				m.EXPECT().RunSweep(mock.Anything).Return(domain.SweepResult{}, engine.ErrSweepInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "interrupted sweep still reports counts",
			secret: "cron-s3cret",
			method: http.MethodPost,
			header: "Authorization: Bearer cron-s3cret",
			setupMock: func(m *mocks.MockSweeper) {
				partial := domain.SweepResult{Total: 5, Updated: 2, Failed: 3}
				m.EXPECT().RunSweep(mock.Anything).Return(partial, context.Canceled).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"failed":3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockSweeper(t)
			tt.setupMock(m)

			_, api := humatest.New(t)
			handlers.RegisterSweepRoutes(api, handlers.NewSweepHandler(m, tt.secret))

			var args []any
			if tt.header != "" {
				args = append(args, tt.header)
			}
			resp := api.Do(tt.method, "/api/v1/sweep", args...)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSweepHandler_Duration(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockSweeper(t)
	m.EXPECT().RunSweep(mock.Anything).
		Return(domain.SweepResult{Total: 1, Updated: 1, Duration: 2500 * time.Millisecond}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterSweepRoutes(api, handlers.NewSweepHandler(m, "k"))

	resp := api.Post("/api/v1/sweep", "Authorization: Bearer k")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Duration float64 `json:"duration"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.InDelta(t, 2.5, body.Duration, 1e-9)
}
