package api

import (
	"fmt"
	"net/http"

	"papertrade/internal/domain"
	"papertrade/internal/service"
	"papertrade/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type portfolioUploadRow struct {
	Date     string  `csv:"date"`
	Symbol   string  `csv:"symbol"`
	Quantity float64 `csv:"quantity"`
}

// uploadPortfolio bulk-replaces a user's holdings from a multipart CSV
// upload (header date,symbol,quantity).
func (m ApiHandler) uploadPortfolio(c *gin.Context) {
	username := c.Param("username")

	if c.Request.ContentLength > maxUploadBytes {
		returnErrorJson(fmt.Errorf("upload exceeds %d bytes: %w", maxUploadBytes, domain.ErrInvalidInput), c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		returnErrorJson(fmt.Errorf("missing file upload: %w", domain.ErrInvalidInput), c)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
		return
	}
	defer f.Close()

	uploadRows := []portfolioUploadRow{}
	if err := gocsv.Unmarshal(f, &uploadRows); err != nil {
		returnErrorJson(fmt.Errorf("malformed csv: %v: %w", err, domain.ErrInvalidInput), c)
		return
	}

	rows := make([]service.PortfolioRow, 0, len(uploadRows))
	for _, row := range uploadRows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			returnErrorJson(fmt.Errorf("bad date %q in csv: %w", row.Date, domain.ErrInvalidInput), c)
			return
		}
		rows = append(rows, service.PortfolioRow{
			Date:     date,
			Symbol:   row.Symbol,
			Quantity: row.Quantity,
		})
	}

	err = m.TradingService.ImportPortfolio(c.Request.Context(), username, rows)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{})
}
