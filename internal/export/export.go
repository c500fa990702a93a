// Package export writes tracked products and their price history to an
// Excel workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const (
	productsSheet = "Products"
	historySheet  = "History"
)

var (
	productHeader = []any{
		"ID", "Name", "Platform", "URL", "Price", "Original Price", "Currency",
		"Deal Score", "Rating", "Reviews", "Tracked Since", "Updated",
	}
	historyHeader = []any{"Product ID", "Product", "Price", "Currency", "Observed At"}
)

// Workbook builds a workbook with a Products sheet and a History sheet.
// history is keyed by product ID; products without an entry get no rows.
func Workbook(products []domain.TrackedProduct, history map[string][]domain.PriceHistoryPoint) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := xl.SetSheetName(xl.GetSheetName(0), productsSheet); err != nil {
		_ = xl.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := xl.NewSheet(historySheet); err != nil {
		_ = xl.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeProducts(xl, products); err != nil {
		_ = xl.Close()
		return nil, err
	}
	if err := writeHistory(xl, products, history); err != nil {
		_ = xl.Close()
		return nil, err
	}
	return xl, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, products []domain.TrackedProduct, history map[string][]domain.PriceHistoryPoint) error {
	xl, err := Workbook(products, history)
	if err != nil {
		return err
	}
	defer func() { _ = xl.Close() }()

	if _, err := xl.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeProducts(xl *excelize.File, products []domain.TrackedProduct) error {
	if err := header(xl, productsSheet, productHeader); err != nil {
		return err
	}
	for i, p := range products {
		row := []any{
			p.ID,
			p.Name,
			p.PlatformDomain,
			p.URL,
			p.CurrentPrice.InexactFloat64(),
			nil,
			p.Currency,
			p.DealScore,
			nil,
			p.ReviewCount,
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if p.OriginalPrice != nil {
			row[5] = p.OriginalPrice.InexactFloat64()
		}
		if p.Rating != nil {
			row[8] = *p.Rating
		}
		if err := setRow(xl, productsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHistory(xl *excelize.File, products []domain.TrackedProduct, history map[string][]domain.PriceHistoryPoint) error {
	if err := header(xl, historySheet, historyHeader); err != nil {
		return err
	}
	r := 2
	for _, p := range products {
		for _, pt := range history[p.ID] {
			row := []any{
				p.ID,
				p.Name,
				pt.Price.InexactFloat64(),
				pt.Currency,
				pt.ObservedAt.UTC().Format(time.RFC3339),
			}
			if err := setRow(xl, historySheet, r, row); err != nil {
				return err
			}
			r++
		}
	}
	return nil
}

func header(xl *excelize.File, sheet string, cols []any) error {
	if err := setRow(xl, sheet, 1, cols); err != nil {
		return err
	}
	style, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := xl.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	if err := xl.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing %s header: %w", sheet, err)
	}
	return nil
}

func setRow(xl *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := xl.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
