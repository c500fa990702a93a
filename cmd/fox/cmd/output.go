package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	apiclient "github.com/shrutirout/foxdeal/internal/api/client"
	"github.com/shrutirout/foxdeal/internal/api/handlers"
	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/notify"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func price(d decimal.Decimal, currency string) string {
	return notify.FormatPrice(d, currency)
}

func optPrice(d *decimal.Decimal, currency string) string {
	if d == nil {
		return "-"
	}
	return price(*d, currency)
}

func optRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *r)
}

func printScoredFact(w io.Writer, sf domain.ScoredFact) error {
	f := sf.Fact
	tw := newTabWriter(w)
	tw.writef("Name:\t%s\n", f.Name)
	tw.writef("Platform:\t%s\n", f.PlatformDomain)
	tw.writef("Price:\t%s\n", price(f.CurrentPrice, f.CurrencyCode))
	tw.writef("MRP:\t%s\n", optPrice(f.OriginalPrice, f.CurrencyCode))
	tw.writef("Rating:\t%s (%d reviews)\n", optRating(f.Rating), f.ReviewCount)
	if f.SellerName != "" {
		tw.writef("Seller:\t%s\n", f.SellerName)
	}
	tw.writef("Deal:\t%.1f/100 %s %s\n", sf.Deal.Score, sf.Deal.Emoji, sf.Deal.Label)
	tw.writef("URL:\t%s\n", f.SourceURL)
	return tw.finish()
}

func printComparison(w io.Writer, cmp domain.Comparison) error {
	tw := newTabWriter(w)
	tw.writef("\tPLATFORM\tPRICE\tRATING\tDEAL\tNAME\n")
	row := func(marker string, sf domain.ScoredFact) {
		tw.writef("%s\t%s\t%s\t%s\t%.1f %s\t%s\n",
			marker,
			sf.Fact.PlatformDomain,
			price(sf.Fact.CurrentPrice, sf.Fact.CurrencyCode),
			optRating(sf.Fact.Rating),
			sf.Deal.Score,
			sf.Deal.Label,
			truncate(sf.Fact.Name, 50),
		)
	}
	row("*", cmp.Original)
	for _, alt := range cmp.Alternatives {
		row("", alt)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d alternatives via %s discovery (%d candidates, %d dropped)\n",
		len(cmp.Alternatives), cmp.Strategy, cmp.Discovered, cmp.Dropped)
	return err
}

func printCandidates(w io.Writer, cands []domain.SearchCandidate) error {
	tw := newTabWriter(w)
	tw.writef("PLATFORM\tKIND\tPRICE\tTITLE\tURL\n")
	for i := range cands {
		c := &cands[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			c.Platform,
			c.Kind,
			optPrice(c.Price, ""),
			truncate(c.Title, 40),
			c.URL,
		)
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, products []domain.TrackedProduct) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tPLATFORM\tPRICE\tDEAL\tUPDATED\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%.1f\t%s\n",
			p.ID,
			truncate(p.Name, 40),
			p.PlatformDomain,
			price(p.CurrentPrice, p.Currency),
			p.DealScore,
			p.UpdatedAt.Local().Format(timeLayout),
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *domain.TrackedProduct) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Platform:\t%s\n", p.PlatformDomain)
	tw.writef("Price:\t%s\n", price(p.CurrentPrice, p.Currency))
	tw.writef("MRP:\t%s\n", optPrice(p.OriginalPrice, p.Currency))
	tw.writef("Rating:\t%s (%d reviews)\n", optRating(p.Rating), p.ReviewCount)
	tw.writef("Deal Score:\t%.1f/100\n", p.DealScore)
	tw.writef("Tracked Since:\t%s\n", p.CreatedAt.Local().Format(timeLayout))
	tw.writef("Updated:\t%s\n", p.UpdatedAt.Local().Format(timeLayout))
	tw.writef("URL:\t%s\n", p.URL)
	return tw.finish()
}

func printObservation(w io.Writer, obs domain.Observation) error {
	if err := printProductDetail(w, &obs.Updated); err != nil {
		return err
	}
	var err error
	switch {
	case obs.Dropped:
		_, err = fmt.Fprintf(w, "\nPrice dropped %s -> %s\n",
			price(obs.OldPrice, obs.Updated.Currency), price(obs.NewPrice, obs.Updated.Currency))
	case obs.HistoryAppended:
		_, err = fmt.Fprintln(w, "\nPrice recorded.")
	}
	return err
}

func printHistoryTable(w io.Writer, points []domain.PriceHistoryPoint) error {
	tw := newTabWriter(w)
	tw.writef("OBSERVED\tPRICE\tCHANGE\n")
	for i := range points {
		change := "-"
		if i > 0 {
			prev := points[i-1].Price
			if !prev.IsZero() {
				pct := points[i].Price.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
				change = pct.StringFixed(1) + "%"
			}
		}
		tw.writef("%s\t%s\t%s\n",
			points[i].ObservedAt.Local().Format(timeLayout),
			price(points[i].Price, points[i].Currency),
			change,
		)
	}
	return tw.finish()
}

func printVerdict(w io.Writer, v engine.Verdict) error {
	if _, err := fmt.Fprintln(w, v.Text); err != nil {
		return err
	}
	if v.Trend == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "\nTrend: %s %.1f%% over %d observations (low %s, high %s)\n",
		v.Trend.Direction, v.Trend.ChangePercent, v.Trend.Points,
		v.Trend.Min.String(), v.Trend.Max.String())
	return err
}

func printSweep(w io.Writer, s apiclient.SweepSummary) error {
	tw := newTabWriter(w)
	tw.writef("Checked:\t%d\n", s.Total)
	tw.writef("Updated:\t%d\n", s.Updated)
	tw.writef("Failed:\t%d\n", s.Failed)
	tw.writef("Price Changes:\t%d\n", s.PriceChanges)
	tw.writef("Alerts Sent:\t%d\n", s.AlertsSent)
	tw.writef("Duration:\t%s\n", s.Duration())
	return tw.finish()
}

func printQuotaTable(w io.Writer, q []handlers.UpstreamQuota) error {
	tw := newTabWriter(w)
	tw.writef("UPSTREAM\tUSED\tLIMIT\tREMAINING\tRESETS\n")
	for i := range q {
		limit, remaining := "unlimited", "-"
		if q[i].DailyLimit > 0 {
			limit = fmt.Sprintf("%d", q[i].DailyLimit)
			remaining = fmt.Sprintf("%d", q[i].Remaining)
		}
		tw.writef("%s\t%d\t%s\t%s\t%s\n",
			q[i].Upstream, q[i].DailyUsed, limit, remaining, q[i].ResetAt.Local().Format(timeLayout))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
