package api

import (
	"fmt"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/util"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
	username := c.Param("username")

	var asOf *time.Time
	if filterDate := c.Query("filter_date"); filterDate != "" {
		date, err := util.ParseDate(filterDate)
		if err != nil {
			returnErrorJson(fmt.Errorf("bad filter_date %q: %w", filterDate, domain.ErrInvalidInput), c)
			return
		}
		asOf = &date
	}

	values, err := m.PortfolioService.Valuation(c.Request.Context(), username, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"values":  values,
	})
}
