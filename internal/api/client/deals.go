package client

import (
	"context"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

type urlRequest struct {
	URL string `json:"url"`
}

// Preview extracts and scores a single product page.
func (c *Client) Preview(ctx context.Context, url string) (domain.ScoredFact, error) {
	var sf domain.ScoredFact
	if err := c.post(ctx, "/api/v1/preview", urlRequest{URL: url}, &sf); err != nil {
		return domain.ScoredFact{}, err
	}
	return sf, nil
}

// Compare finds the product behind url on other platforms and ranks them.
func (c *Client) Compare(ctx context.Context, url string) (domain.Comparison, error) {
	var cmp domain.Comparison
	if err := c.post(ctx, "/api/v1/compare", urlRequest{URL: url}, &cmp); err != nil {
		return domain.Comparison{}, err
	}
	return cmp, nil
}

// Search looks a product name up across platforms without extraction.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	var resp struct {
		Candidates []domain.SearchCandidate `json:"candidates"`
	}
	body := map[string]string{"query": query}
	if err := c.post(ctx, "/api/v1/search", body, &resp); err != nil {
		return nil, err
	}
	return resp.Candidates, nil
}
