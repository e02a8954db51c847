// Package pricedata bundles the static reference price table: one year of
// daily S&P lows in the kaggle S&P-500 CSV format
// (date,open,high,low,close,volume,Name). The table is loaded once at
// startup and never changes for the life of the process.
package pricedata

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"papertrade/internal/domain"
	"papertrade/internal/util"

	"github.com/gocarina/gocsv"
)

//go:embed dataset/sp500_2017.csv
var dataset []byte

type datasetRow struct {
	Date string  `csv:"date"`
	Low  float64 `csv:"low"`
	Name string  `csv:"Name"`
}

// Load parses the bundled dataset into price points.
func Load() ([]domain.PricePoint, error) {
	return parse(bytes.NewReader(dataset))
}

func parse(r io.Reader) ([]domain.PricePoint, error) {
	rows := []datasetRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse price dataset: %w", err)
	}

	points := make([]domain.PricePoint, 0, len(rows))
	for _, row := range rows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in price dataset: %w", row.Date, err)
		}
		points = append(points, domain.PricePoint{
			Date:   date,
			Symbol: row.Name,
			Low:    row.Low,
		})
	}

	return points, nil
}
