package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses. Validation failures are
// client errors, collaborator failures are gateway errors.
func handleError(ctx *gin.Context, err error) {
	var (
		txnErr       *domainerror.TransactionError
		budgetErr    *domainerror.BudgetError
		goalErr      *domainerror.GoalError
		portfolioErr *domainerror.PortfolioError
		settingsErr  *domainerror.SettingsError
		catErr       *domainerror.CategorizationError
		priceErr     *domainerror.PriceFeedError
	)

	switch {
	case errors.As(err, &txnErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: txnErr.Message, Code: string(txnErr.Code)})
	case errors.As(err, &budgetErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: budgetErr.Message, Code: string(budgetErr.Code)})
	case errors.As(err, &goalErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: goalErr.Message, Code: string(goalErr.Code)})
	case errors.As(err, &portfolioErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: portfolioErr.Message, Code: string(portfolioErr.Code)})
	case errors.As(err, &settingsErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: settingsErr.Message, Code: string(settingsErr.Code)})
	case errors.As(err, &catErr):
		ctx.JSON(getStatusCodeForCategorizationError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
	case errors.As(err, &priceErr):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: priceErr.Error(),
			Code:  string(priceErr.Code),
		})
	default:
		slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForCategorizationError maps categorization error codes to HTTP status codes.
func getStatusCodeForCategorizationError(code domainerror.CategorizationErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyDescription, domainerror.ErrCodeInvalidRules:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeAITimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// badRequest answers 400 with code.
func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parseID reads the :id path parameter, answering 400 when it is not a uuid.
func parseID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// notFound answers 404 for resource.
func notFound(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: resource + " not found",
	})
}

func decimalFrom(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
