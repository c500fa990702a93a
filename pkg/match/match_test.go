package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shrutirout/foxdeal/pkg/match"
)

func TestIsSameProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		original  string
		candidate string
		want      bool
	}{
		{
			name:      "different generation number",
			original:  "iPhone 15 128GB",
			candidate: "Apple iPhone 17 128GB Black",
			want:      false,
		},
		{
			name:      "renewed suffix still matches",
			original:  "iPhone 15 128GB",
			candidate: "Apple iPhone 15 128GB Black (Renewed)",
			want:      true,
		},
		{
			name:      "storage size differs",
			original:  "Samsung Galaxy S24 256GB Onyx Black",
			candidate: "Samsung Galaxy S24 512GB Onyx Black",
			want:      false,
		},
		{
			name:      "reordered words",
			original:  "Sony WH-1000XM5 Wireless Noise Cancelling Headphones Black",
			candidate: "Black Wireless Headphones WH1000XM5 by Sony, Noise Cancelling",
			want:      true,
		},
		{
			name:      "single digit numbers are not discriminators",
			original:  "Nike Quest 6 Running Shoes",
			candidate: "Nike Quest Running Shoes for Men",
			want:      true,
		},
		{
			name:      "low overlap",
			original:  "Philips Air Fryer HD9252 Digital Touch Panel",
			candidate: "Philips HD9252 replacement basket",
			want:      false,
		},
		{
			name:      "empty original",
			original:  "",
			candidate: "Apple iPhone 15",
			want:      false,
		},
		{
			name:      "empty candidate",
			original:  "Apple iPhone 15",
			candidate: "   ",
			want:      false,
		},
		{
			name:      "no-break spaces separate words",
			original:  "Apple\u00a0iPhone\u00a015\u00a0128GB",
			candidate: "Apple iPhone 15 128GB Black",
			want:      true,
		},
		{
			name:      "narrow no-break space in candidate",
			original:  "Samsung Galaxy S24 256GB",
			candidate: "Samsung Galaxy S24\u202f256GB Onyx Black",
			want:      true,
		},
		{
			name:      "only short words",
			original:  "TV 55",
			candidate: "TV 55",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.IsSameProduct(tt.original, tt.candidate))
		})
	}
}

func TestMatcher_Threshold(t *testing.T) {
	t.Parallel()

	original := "Apple iPhone 15 128GB Blue"
	candidate := "Apple iPhone 15 128GB"

	// 3 of 4 significant words overlap.
	assert.True(t, match.New(0.7).Same(original, candidate))
	assert.False(t, match.New(0.8).Same(original, candidate))
	assert.True(t, match.New(0).Same(original, candidate), "zero selects the default")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "apple iphone15 128gb", match.Normalize("  Apple   iPhone-15 (128GB)! "))
	assert.Equal(t, "wh1000xm5", match.Normalize("WH-1000XM5"))
	assert.Empty(t, match.Normalize("()!"))
	assert.Equal(t, "apple iphone 15 128gb", match.Normalize("Apple\u00a0iPhone\u202f15\u3000128GB\u00a0"))
	assert.Equal(t, "café noir", match.Normalize("Café\u2009Noir"))
}
