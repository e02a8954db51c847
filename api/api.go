package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// uploads are capped at 50mb
const maxUploadBytes = 50 * 1 << 20

type ApiHandler struct {
	Db               *sql.DB
	Logger           *zap.SugaredLogger
	UserService      service.UserService
	TradingService   service.TradingService
	PortfolioService service.PortfolioService
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to papertrade"})
	})
	router.POST("/user", m.createUser)
	router.PATCH("/user/:username", m.updateUser)
	router.GET("/user/:username/portfolio", m.getPortfolio)
	router.PUT("/user/:username/portfolio", m.uploadPortfolio)
	router.POST("/stocks/:username/buy", m.buy)
	router.POST("/stocks/:username/sell", m.sell)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps the domain error taxonomy onto 400s with the
// messages clients rely on; anything unrecognized is a 500.
func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "error", err.Error(), "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": messageForError(err),
	})
}

func statusForError(err error) int {
	clientErrors := []error{
		domain.ErrDuplicateUser,
		domain.ErrUserNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrInsufficientHoldings,
		domain.ErrPriceNotFound,
		domain.ErrInvalidInput,
	}
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func messageForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Can't spend more than you have"
	case errors.Is(err, domain.ErrInsufficientHoldings):
		return "Can't sell more than you have"
	case errors.Is(err, domain.ErrDuplicateUser):
		return "Username is already in use"
	}
	return err.Error()
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	log := m.Logger.With(
		"requestId", uuid.NewString(),
		"method", c.Request.Method,
		"route", c.FullPath(),
	)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, log)
	c.Request = c.Request.WithContext(ctx)

	start := time.Now().UTC()
	c.Next()

	log.Infow("request handled",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
