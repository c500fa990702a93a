package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/discovery"
	"github.com/shrutirout/foxdeal/pkg/llm"
	llmmocks "github.com/shrutirout/foxdeal/pkg/llm/mocks"
	"github.com/shrutirout/foxdeal/pkg/logger"
)

func jsonRequest() interface{} {
	return mock.MatchedBy(func(r llm.Request) bool {
		return r.Format == llm.FormatJSON && r.Prompt != ""
	})
}

func TestLLMPlanner_Plan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    discovery.Plan
	}{
		{
			name: "fenced answer",
			content: "```json\n" + `{"brand":"Apple","category":"Electronics - Smartphones","specifications":"Black, 128GB",
				"refinedQuery":"Apple iPhone 15 Black 128GB","platforms":["amazon.in","Flipkart.com"],"confidence":"High"}` + "\n```",
			want: discovery.Plan{
				RefinedQuery:   "Apple iPhone 15 Black 128GB",
				Platforms:      []string{"amazon.in", "flipkart.com"},
				Brand:          "Apple",
				Category:       "Electronics - Smartphones",
				Specifications: "Black, 128GB",
				Confidence:     "high",
			},
		},
		{
			name:    "legacy key and no platforms",
			content: `{"brand":null,"category":"Beauty","optimizedQuery":"Lakme lipstick red","platforms":[]}`,
			want: discovery.Plan{
				RefinedQuery: "Lakme lipstick red",
				Platforms:    []string{"amazon.in", "flipkart.com", "myntra.com"},
				Category:     "Beauty",
				Confidence:   "medium",
			},
		},
		{
			name:    "empty refined query keeps raw query",
			content: `{"category":"", "platforms":["amazon.in"], "confidence":"low"}`,
			want: discovery.Plan{
				RefinedQuery: "iphone 15 black",
				Platforms:    []string{"amazon.in"},
				Confidence:   "low",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := llmmocks.NewMockBackend(t)
			backend.EXPECT().Generate(mock.Anything, jsonRequest()).
				Return(llm.Response{Content: tt.content, Model: "test"}, nil)

			got, err := discovery.NewLLMPlanner(backend, logger.Discard()).Plan(context.Background(), " iphone 15 black ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLMPlanner_PlanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    llm.Response
		respErr error
	}{
		{name: "backend error", respErr: errors.New("connection refused")},
		{name: "malformed json", resp: llm.Response{Content: "I think you should search Amazon."}},
		{name: "empty answer", resp: llm.Response{Content: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := llmmocks.NewMockBackend(t)
			backend.EXPECT().Generate(mock.Anything, mock.Anything).Return(tt.resp, tt.respErr)

			_, err := discovery.NewLLMPlanner(backend, logger.Discard()).Plan(context.Background(), "kettle")

			var pe *discovery.PlanningError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "kettle", pe.Query)
		})
	}
}

func TestPlannedSearch_WithLLMPlannerFallback(t *testing.T) {
	t.Parallel()

	backend := llmmocks.NewMockBackend(t)
	backend.EXPECT().Generate(mock.Anything, mock.Anything).Return(llm.Response{Content: "{not json"}, nil)

	s := discovery.NewPlannedSearch(discovery.NewLLMPlanner(backend, logger.Discard()), logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{Name: "boat airdopes"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "low", got[0].Confidence)
}

func TestLLMGuesser_Guess(t *testing.T) {
	t.Parallel()

	backend := llmmocks.NewMockBackend(t)
	backend.EXPECT().Generate(mock.Anything, jsonRequest()).Return(llm.Response{
		Content: `{"listings":[{"platform":"amazon.in","url":"https://www.amazon.in/x/dp/B0CHX1W1XY","confidence":"high","notes":"flagship"}]}`,
	}, nil)

	got, err := discovery.NewLLMGuesser(backend, logger.Discard()).Guess(context.Background(), "iPhone 15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, discovery.Guess{
		Platform:   "amazon.in",
		URL:        "https://www.amazon.in/x/dp/B0CHX1W1XY",
		Confidence: "high",
		Notes:      "flagship",
	}, got[0])
}

func TestLLMGuesser_GuessErrors(t *testing.T) {
	t.Parallel()

	backend := llmmocks.NewMockBackend(t)
	backend.EXPECT().Generate(mock.Anything, mock.Anything).Return(llm.Response{Content: "no idea"}, nil).Once()
	backend.EXPECT().Generate(mock.Anything, mock.Anything).Return(llm.Response{}, errors.New("timeout")).Once()

	g := discovery.NewLLMGuesser(backend, logger.Discard())
	_, err := g.Guess(context.Background(), "kettle")
	require.Error(t, err)

	_, err = g.Guess(context.Background(), "kettle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating guesses")
}
