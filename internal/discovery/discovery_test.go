package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/discovery"
	discoverymocks "github.com/shrutirout/foxdeal/internal/discovery/mocks"
	"github.com/shrutirout/foxdeal/internal/search"
	searchmocks "github.com/shrutirout/foxdeal/internal/search/mocks"
	"github.com/shrutirout/foxdeal/pkg/logger"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

func TestNew(t *testing.T) {
	t.Parallel()

	searcher := searchmocks.NewMockSearcher(t)
	planner := discoverymocks.NewMockPlanner(t)
	guesser := discoverymocks.NewMockGuesser(t)
	deps := discovery.Deps{Searcher: searcher, Planner: planner, Guesser: guesser, Logger: logger.Discard()}

	tests := []struct {
		name    string
		deps    discovery.Deps
		want    string
		wantErr bool
	}{
		{name: "structured", deps: deps, want: "structured"},
		{name: " Planned ", deps: deps, want: "planned"},
		{name: "direct", deps: deps, want: "direct"},
		{name: "bogus", deps: deps, wantErr: true},
		{name: "structured", deps: discovery.Deps{}, wantErr: true},
		{name: "planned", deps: discovery.Deps{}, wantErr: true},
		{name: "direct", deps: discovery.Deps{}, wantErr: true},
	}

	for _, tt := range tests {
		s, err := discovery.New(tt.name, tt.deps)
		if tt.wantErr {
			require.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, s.Name())
	}

	_, err := discovery.New("bogus", deps)
	require.ErrorIs(t, err, discovery.ErrUnknownStrategy)
	assert.Equal(t, []string{"direct", "planned", "structured"}, discovery.Names())
}

func TestQuery_Text(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kettle", discovery.Query{Name: "  kettle "}.Text())
	assert.Equal(t, "Prestige Kettle", discovery.Query{
		Name:     "kettle",
		Original: &domain.ProductFact{Name: "Prestige Kettle"},
	}.Text())
}

func TestStructuredSearch_Discover(t *testing.T) {
	t.Parallel()

	searcher := searchmocks.NewMockSearcher(t)
	searcher.EXPECT().
		Search(mock.Anything, "Apple iPhone 15 128GB", mock.MatchedBy(func(o search.Options) bool {
			return len(o.Sites) == 8 && o.Sites[0] == "amazon.in"
		})).
		Return([]domain.WebResult{
			{Title: "iPhone 15 (A)", Link: "https://www.amazon.in/Apple-iPhone-15/dp/B0CHX1W1XY"},
			{Title: "iPhone 15 (B)", Link: "https://www.amazon.in/Apple-iPhone-15-Blue/dp/B0CHX2F5QT"},
			{Title: "iPhone 15 (C)", Link: "https://www.amazon.in/Apple-iPhone-15-Pink/dp/B0CHX3QBCH"},
			{Title: "search page", Link: "https://www.amazon.in/s?k=iphone+15"},
			{Title: "iPhone 15 Flipkart", Link: "https://www.flipkart.com/apple-iphone-15/p/itm6ac6485515ae4", Snippet: "₹69,900"},
			{Title: "iPhone 15 Flipkart dup", Link: "https://www.flipkart.com/apple-iphone-15/p/itm6ac6485515ae4"},
			{Title: "iPhone 15 Croma", Link: "https://www.croma.com/apple-iphone-15/p/300652"},
			{Title: "Unknown shop", Link: "https://shop.example.com/iphone-15/p/1234"},
		}, nil)

	s := discovery.NewStructuredSearch(searcher, 0, logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{
		Original:        &domain.ProductFact{Name: "Apple iPhone 15 128GB"},
		ExcludePlatform: "croma.com",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "https://www.amazon.in/Apple-iPhone-15/dp/B0CHX1W1XY", got[0].URL)
	assert.Equal(t, "https://www.amazon.in/Apple-iPhone-15-Blue/dp/B0CHX2F5QT", got[1].URL)
	assert.Equal(t, "flipkart.com", got[2].Platform)
	assert.Equal(t, "Flipkart", got[2].PlatformName)
	assert.Equal(t, domain.CandidateProduct, got[2].Kind)

	for _, c := range got {
		assert.NotEqual(t, "croma.com", c.Platform)
	}
}

func TestStructuredSearch_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()
		s := discovery.NewStructuredSearch(searchmocks.NewMockSearcher(t), 2, logger.Discard())
		_, err := s.Discover(context.Background(), discovery.Query{Name: "  "})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("search failure", func(t *testing.T) {
		t.Parallel()
		searcher := searchmocks.NewMockSearcher(t)
		searcher.EXPECT().Search(mock.Anything, "kettle", mock.Anything).
			Return(nil, &search.StatusError{Provider: "serper", StatusCode: 429})
		searcher.EXPECT().Name().Return("serper")

		s := discovery.NewStructuredSearch(searcher, 2, logger.Discard())
		_, err := s.Discover(context.Background(), discovery.Query{Name: "kettle"})

		var se *search.StatusError
		require.ErrorAs(t, err, &se)
		assert.Contains(t, err.Error(), "searching serper")
	})
}

func TestPlannedSearch_Discover(t *testing.T) {
	t.Parallel()

	planner := discoverymocks.NewMockPlanner(t)
	planner.EXPECT().Plan(mock.Anything, "iphone 15 black").Return(discovery.Plan{
		RefinedQuery: "Apple iPhone 15 Black 128GB",
		Platforms:    []string{"amazon.in", "flipkart.com", "unknown-shop.com", "www.croma.com", "amazon.in"},
		Confidence:   "high",
	}, nil)

	s := discovery.NewPlannedSearch(planner, logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{
		Name:            "iphone 15 black",
		ExcludePlatform: "flipkart.com",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "amazon.in", got[0].Platform)
	assert.Equal(t, "https://www.amazon.in/s?k=Apple+iPhone+15+Black+128GB", got[0].URL)
	assert.Equal(t, domain.CandidateSearch, got[0].Kind)
	assert.Equal(t, "high", got[0].Confidence)
	assert.Equal(t, "croma.com", got[1].Platform)
	assert.Equal(t, "https://www.croma.com/searchB?q=Apple+iPhone+15+Black+128GB", got[1].URL)
}

func TestPlannedSearch_FallsBackOnPlanningError(t *testing.T) {
	t.Parallel()

	planner := discoverymocks.NewMockPlanner(t)
	planner.EXPECT().Plan(mock.Anything, "nike quest 6").
		Return(discovery.Plan{}, &discovery.PlanningError{Query: "nike quest 6", Err: errors.New("bad json")})

	s := discovery.NewPlannedSearch(planner, logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{Name: "nike quest 6"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "amazon.in", got[0].Platform)
	assert.Equal(t, "https://www.amazon.in/s?k=nike+quest+6", got[0].URL)
	assert.Equal(t, "flipkart.com", got[1].Platform)
	assert.Equal(t, "https://www.flipkart.com/search?q=nike+quest+6", got[1].URL)
	for _, c := range got {
		assert.Equal(t, "low", c.Confidence)
	}
}

func TestFallbackPlan(t *testing.T) {
	t.Parallel()

	p := discovery.FallbackPlan("  raw query ")
	assert.Equal(t, "raw query", p.RefinedQuery)
	assert.Equal(t, []string{"amazon.in", "flipkart.com"}, p.Platforms)
	assert.Equal(t, "low", p.Confidence)
	assert.True(t, p.Fallback)
}

func TestDirectURL_Discover(t *testing.T) {
	t.Parallel()

	original := &domain.ProductFact{Name: "Sony WH-1000XM5", PlatformDomain: "croma.com"}

	guesser := discoverymocks.NewMockGuesser(t)
	guesser.EXPECT().Guess(mock.Anything, "Sony WH-1000XM5").Return([]discovery.Guess{
		{Platform: "amazon.in", URL: "https://www.amazon.in/Sony-WH-1000XM5/dp/B09XS7JWHH", Confidence: "High"},
		{Platform: "amazon.in", URL: "https://www.amazon.in/Sony-WH-1000XM5/dp/B09XS7JWHH", Confidence: "high"},
		{Platform: "flipkart.com", URL: "http://www.flipkart.com/sony-wh-1000xm5/p/itm123"},
		{Platform: "flipkart.com", URL: "https://www.flipkart.com/search?q=sony+wh-1000xm5"},
		{Platform: "myntra.com", URL: "https://www.amazon.in/Sony/dp/B09XS7JWHH"},
		{Platform: "croma.com", URL: "https://www.croma.com/sony-wh-1000xm5/p/256543"},
		{Platform: "tatacliq.com", URL: "https://www.tatacliq.com/sony-wh-1000xm5/p-mp000000013715963"},
	}, nil)

	s := discovery.NewDirectURL(guesser, logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{Original: original, ExcludePlatform: "croma.com"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "amazon.in", got[0].Platform)
	assert.Equal(t, "high", got[0].Confidence)
	assert.Equal(t, domain.CandidateProduct, got[0].Kind)
}

func TestDirectURL_NeedsOriginal(t *testing.T) {
	t.Parallel()

	s := discovery.NewDirectURL(discoverymocks.NewMockGuesser(t), logger.Discard())
	got, err := s.Discover(context.Background(), discovery.Query{Name: "kettle"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDirectURL_GuesserError(t *testing.T) {
	t.Parallel()

	guesser := discoverymocks.NewMockGuesser(t)
	guesser.EXPECT().Guess(mock.Anything, "kettle").Return(nil, errors.New("model down"))

	s := discovery.NewDirectURL(guesser, logger.Discard())
	_, err := s.Discover(context.Background(), discovery.Query{Original: &domain.ProductFact{Name: "kettle"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model down")
}

func TestValidGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain string
		url    string
		want   bool
	}{
		{name: "amazon product", domain: "amazon.in", url: "https://www.amazon.in/x/dp/B0CHX1W1XY", want: true},
		{name: "flipkart product", domain: "flipkart.com", url: "https://www.flipkart.com/x/p/itm1", want: true},
		{name: "plain http", domain: "amazon.in", url: "http://www.amazon.in/x/dp/B0CHX1W1XY", want: false},
		{name: "host mismatch", domain: "flipkart.com", url: "https://www.amazon.in/x/dp/B0CHX1W1XY", want: false},
		{name: "search page", domain: "amazon.in", url: "https://www.amazon.in/s?k=kettle", want: false},
		{name: "category page", domain: "flipkart.com", url: "https://www.flipkart.com/category/p/itm1", want: false},
		{name: "no marker", domain: "amazon.in", url: "https://www.amazon.in/deals", want: false},
		{name: "empty domain", domain: "", url: "https://www.amazon.in/x/dp/B0CHX1W1XY", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, discovery.ValidGuess(tt.domain, tt.url))
		})
	}
}
