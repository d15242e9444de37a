package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/exchange_rate_board/internal/apperrors"
	portssvc "github.com/SscSPs/exchange_rate_board/internal/core/ports/services"
	"github.com/SscSPs/exchange_rate_board/internal/dto"
	"github.com/SscSPs/exchange_rate_board/internal/middleware"
	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Public error messages. Causes are logged, never returned.
const (
	msgFetchLatestFailed  = "Error al obtener datos"
	msgSaveFailed         = "Error al guardar datos"
	msgFetchHistoryFailed = "Error al obtener historial"
	msgIncompleteData     = "Datos incompletos"
	msgInvalidData        = "Datos inválidos"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	formatter           utils.RateFormatter
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, formatter utils.RateFormatter) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		formatter:           formatter,
	}
}

// RegisterExchangeRateRoutes registers routes related to exchange rates.
// createMiddleware runs only in front of POST, e.g. a rate limiter.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, formatter utils.RateFormatter, createMiddleware ...gin.HandlerFunc) {
	dto.RegisterValidators()
	h := newExchangeRateHandler(exchangeRateService, formatter)

	createChain := append([]gin.HandlerFunc{}, createMiddleware...)
	createChain = append(createChain, h.createExchangeRate)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getLatestExchangeRate)
		rates.POST("", createChain...)
		rates.GET("/history", h.getExchangeRateHistory)
	}
}

// getLatestExchangeRate godoc
// @Summary Get the latest exchange rate
// @Description Returns the most recent buy/sell pair, or fixed fallback values when none has been recorded
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rates [get]
func (h *exchangeRateHandler) getLatestExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	rate, err := h.exchangeRateService.GetLatestExchangeRate(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No exchange rate recorded, serving fallback")
			c.JSON(http.StatusOK, dto.FallbackExchangeRateResponse())
			return
		}
		logger.Error("Failed to get latest exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgFetchLatestFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate, h.formatter))
}

// createExchangeRate godoc
// @Summary Record a new exchange rate
// @Description Stores a buy/sell pair. Values may be sent as numbers or numeric strings.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Buy and sell rates"
// @Success 200 {object} dto.CreateExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or non-numeric buy/sell"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			logger.Warn("Incomplete exchange rate request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgIncompleteData})
			return
		}
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidData})
		return
	}

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req.Buy.Decimal, req.Sell.Decimal)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrValidation) && errors.As(err, &appErr) {
			logger.Warn("Validation error creating exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error("Failed to create exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgSaveFailed})
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int64("rate_id", rate.ID))
	c.JSON(http.StatusOK, dto.ToCreateExchangeRateResponse(rate, h.formatter))
}

// getExchangeRateHistory godoc
// @Summary List recent exchange rates
// @Description Returns up to 20 rates, newest first
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateHistoryItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rates/history [get]
func (h *exchangeRateHandler) getExchangeRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	rates, err := h.exchangeRateService.ListExchangeRateHistory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rate history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgFetchHistoryFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateHistoryResponse(rates, h.formatter))
}
