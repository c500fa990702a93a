package extract_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/pkg/extract"
)

func TestRaw_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantPrice   string
		wantOrig    bool
		wantRating  float64
		wantReviews int
	}{
		{
			name:        "numbers",
			body:        `{"productName":"a","currentPrice":499.5,"originalPrice":999,"rating":4.2,"reviewCount":120}`,
			wantPrice:   "499.5",
			wantOrig:    true,
			wantRating:  4.2,
			wantReviews: 120,
		},
		{
			name:        "formatted strings",
			body:        `{"productName":"a","currentPrice":"₹1,499","originalPrice":null,"rating":"4.1 out of 5 stars","reviewCount":"2,311 ratings"}`,
			wantPrice:   "1499",
			wantRating:  4.1,
			wantReviews: 2311,
		},
		{
			name:      "unparseable original price is dropped",
			body:      `{"productName":"a","currentPrice":"10","originalPrice":"N/A"}`,
			wantPrice: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var raw extract.Raw
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))

			require.True(t, raw.CurrentPrice.Valid)
			assert.True(t, raw.CurrentPrice.Amount.Equal(decimal.RequireFromString(tt.wantPrice)))
			assert.Equal(t, tt.wantOrig, raw.OriginalPrice.Valid)
			if tt.wantRating > 0 {
				require.NotNil(t, raw.Rating)
				assert.InDelta(t, tt.wantRating, float64(*raw.Rating), 0.001)
			}
			assert.Equal(t, tt.wantReviews, int(raw.ReviewCount))
		})
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		A extract.Price `json:"a"`
		B extract.Price `json:"b"`
	}{A: extract.NewPrice(decimal.RequireFromString("12.50"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.5,"b":null}`, string(b))
	assert.Nil(t, extract.Price{}.Ptr())
}
