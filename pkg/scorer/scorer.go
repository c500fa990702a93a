package score

import (
	"math"
	"strings"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Weights defines the relative importance of each scoring factor.
type Weights struct {
	Rating   float64
	Reviews  float64
	Seller   float64
	Platform float64
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Rating:   0.40,
		Reviews:  0.30,
		Seller:   0.20,
		Platform: 0.10,
	}
}

// Signals holds the quality signals a deal score is computed from
// (decoupled from ProductFact).
type Signals struct {
	Rating         *float64
	ReviewCount    int
	SellerRating   *float64
	SellerName     string
	PlatformDomain string
}

// SignalsFromFact picks the scoring signals out of an extracted fact.
func SignalsFromFact(f domain.ProductFact) Signals {
	return Signals{
		Rating:         f.Rating,
		ReviewCount:    f.ReviewCount,
		SellerRating:   f.SellerRating,
		SellerName:     f.SellerName,
		PlatformDomain: f.PlatformDomain,
	}
}

// Score computes the deal score with the default weights.
func Score(s Signals) domain.DealScore {
	return ScoreWith(s, DefaultWeights())
}

// ScoreFact scores an extracted fact with the default weights.
func ScoreFact(f domain.ProductFact) domain.DealScore {
	return Score(SignalsFromFact(f))
}

// ScoreWith computes the composite deal score for a listing. It is pure:
// identical inputs always yield identical output.
func ScoreWith(s Signals, w Weights) domain.DealScore {
	rating := ratingScore(s.Rating)
	reviews := reviewScore(s.ReviewCount)
	seller := sellerScore(s.SellerRating, s.SellerName, s.PlatformDomain)
	trust := platform.Trust(s.PlatformDomain)
	plat := trust * 10

	total := rating*w.Rating + reviews*w.Reviews + seller*w.Seller + plat*w.Platform
	total = round1(clamp(total, 0, 100))

	lbl, emoji := Label(total)
	return domain.DealScore{
		Score: total,
		Label: lbl,
		Emoji: emoji,
		Color: Color(total),
		Breakdown: domain.ScoreBreakdown{
			Rating:        component(rating, w.Rating),
			Reviews:       component(reviews, w.Reviews),
			Seller:        component(seller, w.Seller),
			Platform:      component(plat, w.Platform),
			PlatformTrust: trust,
		},
	}
}

func component(raw, weight float64) domain.ScoreComponent {
	return domain.ScoreComponent{
		RawScore:     round1(raw),
		Weight:       math.Round(weight * 100),
		EarnedPoints: round1(raw * weight),
	}
}

// ratingScore maps a 0-5 product rating to 0-100; unrated listings get 60.
func ratingScore(rating *float64) float64 {
	if rating == nil || *rating <= 0 {
		return 60
	}
	return clamp(*rating/5*100, 0, 100)
}

// reviewScore bands the review count as social proof.
func reviewScore(count int) float64 {
	switch {
	case count >= 1000:
		return 100
	case count >= 500:
		return 85
	case count >= 250:
		return 70
	case count >= 100:
		return 55
	case count >= 50:
		return 40
	case count >= 10:
		return 25
	case count >= 1:
		return 10
	default:
		return 0
	}
}

var authorizedMarkers = []string{"official store", "authorized", "verified seller", "brand official"}

// sellerScore prefers the platform's seller rating and falls back to
// name-based trust heuristics.
func sellerScore(sellerRating *float64, sellerName, platformDomain string) float64 {
	if sellerRating != nil && *sellerRating > 0 {
		return clamp(*sellerRating/5*100, 0, 100)
	}

	seller := strings.ToLower(strings.TrimSpace(sellerName))
	if seller == "" {
		return 50
	}

	for _, m := range authorizedMarkers {
		if strings.Contains(seller, m) {
			return 100
		}
	}

	for _, trusted := range platform.TrustedSellers(platformDomain) {
		if strings.Contains(seller, trusted) {
			return 100
		}
	}

	if strings.Contains(seller, "fulfilled by") || strings.Contains(seller, "fba") {
		return 80
	}

	return 30
}

// Label buckets a final score.
func Label(score float64) (domain.Label, string) {
	switch {
	case score >= 85:
		return domain.LabelExcellent, "🔥"
	case score >= 70:
		return domain.LabelGood, "✅"
	case score >= 55:
		return domain.LabelAverage, "⚠️"
	case score >= 40:
		return domain.LabelBelowAverage, "👎"
	default:
		return domain.LabelPoor, "❌"
	}
}

// Color returns the display color class for a final score.
func Color(score float64) string {
	switch {
	case score >= 85:
		return "green"
	case score >= 70:
		return "blue"
	case score >= 55:
		return "yellow"
	case score >= 40:
		return "orange"
	default:
		return "red"
	}
}

// Recommendation returns a one-line buying recommendation for a score.
func Recommendation(score float64) string {
	switch {
	case score >= 85:
		return "Highly recommended: excellent ratings, many reviews and a trusted seller."
	case score >= 70:
		return "Good choice: solid ratings and reasonable validation."
	case score >= 55:
		return "Proceed with caution: average listing, check reviews before buying."
	case score >= 40:
		return "Not recommended: concerning ratings or little validation."
	default:
		return "Avoid: poor ratings, few reviews or an untrusted seller."
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
