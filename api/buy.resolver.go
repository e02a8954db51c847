package api

import (
	"fmt"

	"papertrade/internal/domain"
	"papertrade/internal/service"
	"papertrade/internal/util"

	"github.com/gin-gonic/gin"
)

type tradeRequest struct {
	Date     string  `json:"date" binding:"required"`
	Symbol   string  `json:"symbol" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

func (m ApiHandler) buy(c *gin.Context) {
	username := c.Param("username")

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	date, err := util.ParseDate(requestBody.Date)
	if err != nil {
		returnErrorJson(fmt.Errorf("bad date %q: %w", requestBody.Date, domain.ErrInvalidInput), c)
		return
	}

	result, err := m.TradingService.Buy(c.Request.Context(), service.TradeInput{
		Username: username,
		Symbol:   requestBody.Symbol,
		Date:     date,
		Quantity: requestBody.Quantity,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"cost":    result.Amount,
		"balance": result.NewBalance,
	})
}
