package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFact_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fact ProductFact
		want bool
	}{
		{
			name: "name and positive price",
			fact: ProductFact{Name: "Pixel 8", CurrentPrice: decimal.NewFromInt(49999)},
			want: true,
		},
		{
			name: "missing name",
			fact: ProductFact{CurrentPrice: decimal.NewFromInt(10)},
			want: false,
		},
		{
			name: "zero price",
			fact: ProductFact{Name: "Pixel 8", CurrentPrice: decimal.Zero},
			want: false,
		},
		{
			name: "negative price",
			fact: ProductFact{Name: "Pixel 8", CurrentPrice: decimal.NewFromInt(-5)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fact.Valid())
		})
	}
}

func TestTrackedProduct_ApplyFact(t *testing.T) {
	t.Parallel()

	p := TrackedProduct{
		Name:         "Old name",
		ImageURL:     "https://img/old.jpg",
		Currency:     "INR",
		CurrentPrice: decimal.NewFromInt(1000),
	}
	p.ApplyFact(ProductFact{
		Name:         "New name",
		CurrentPrice: decimal.NewFromInt(900),
		ReviewCount:  12,
	}, DealScore{Score: 61.5})

	assert.Equal(t, "New name", p.Name)
	assert.Equal(t, "https://img/old.jpg", p.ImageURL, "empty image keeps cached value")
	assert.Equal(t, "INR", p.Currency, "empty currency keeps cached value")
	assert.True(t, p.CurrentPrice.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, 12, p.ReviewCount)
	assert.InDelta(t, 61.5, p.DealScore, 0.001)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     any
		wantField string
	}{
		{name: "valid url", input: URLInput{URL: "https://www.amazon.in/dp/B0C"}},
		{name: "empty url", input: URLInput{}, wantField: "url"},
		{name: "not a url", input: URLInput{URL: "amazon"}, wantField: "url"},
		{name: "valid query", input: QueryInput{Query: "iphone 15"}},
		{name: "short query", input: QueryInput{Query: "ip"}, wantField: "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
