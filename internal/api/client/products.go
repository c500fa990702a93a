package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shrutirout/foxdeal/internal/engine"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

func productPath(id string, suffix string) string {
	return "/api/v1/products/" + url.PathEscape(id) + suffix
}

// Track starts tracking the product at rawURL for the token's user.
func (c *Client) Track(ctx context.Context, rawURL string) (domain.Observation, error) {
	var obs domain.Observation
	if err := c.post(ctx, "/api/v1/products", urlRequest{URL: rawURL}, &obs); err != nil {
		return domain.Observation{}, err
	}
	return obs, nil
}

// ProductFilter narrows a product listing. Zero fields are not sent and
// the server defaults apply.
type ProductFilter struct {
	Platform string
	Search   string
	MinScore float64
	Limit    int
	Offset   int
	OrderBy  string
}

func (f ProductFilter) encode() string {
	v := url.Values{}
	if f.Platform != "" {
		v.Set("platform", f.Platform)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.MinScore != 0 {
		v.Set("min_score", strconv.FormatFloat(f.MinScore, 'f', -1, 64))
	}
	if f.Limit != 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset != 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.OrderBy != "" {
		v.Set("order_by", f.OrderBy)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ProductPage is one page of a filtered listing.
type ProductPage struct {
	Products []domain.TrackedProduct `json:"products"`
	Total    int                     `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

// FindProducts returns one page of the caller's products matching f.
func (c *Client) FindProducts(ctx context.Context, f ProductFilter) (ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "/api/v1/products"+f.encode(), &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

// maxPageSize is the largest page the server hands out.
const maxPageSize = 500

// Products lists all of the caller's tracked products, newest first,
// fetching as many pages as needed.
func (c *Client) Products(ctx context.Context) ([]domain.TrackedProduct, error) {
	var all []domain.TrackedProduct
	for {
		page, err := c.FindProducts(ctx, ProductFilter{Limit: maxPageSize, Offset: len(all)})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Products...)
		if len(page.Products) == 0 || len(all) >= page.Total {
			return all, nil
		}
	}
}

// Product returns one tracked product.
func (c *Client) Product(ctx context.Context, id string) (*domain.TrackedProduct, error) {
	var p domain.TrackedProduct
	if err := c.get(ctx, productPath(id, ""), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// History returns a product's price history, oldest first.
func (c *Client) History(ctx context.Context, id string) ([]domain.PriceHistoryPoint, error) {
	var resp struct {
		Points []domain.PriceHistoryPoint `json:"points"`
	}
	if err := c.get(ctx, productPath(id, "/history"), &resp); err != nil {
		return nil, err
	}
	return resp.Points, nil
}

// Delete stops tracking a product and drops its history.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.del(ctx, productPath(id, ""))
}

// Verdict asks the server for a buy-or-wait summary of a product.
func (c *Client) Verdict(ctx context.Context, id string) (engine.Verdict, error) {
	var v engine.Verdict
	if err := c.post(ctx, productPath(id, "/verdict"), nil, &v); err != nil {
		return engine.Verdict{}, err
	}
	return v, nil
}
