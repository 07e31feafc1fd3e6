package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/application/usecase/anticipation"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
	"github.com/openmonetis/backend/internal/integration/entrypoint/dto"
	"github.com/openmonetis/backend/internal/integration/entrypoint/middleware"
)

// AnticipationController handles installment anticipation endpoints.
type AnticipationController struct {
	anticipateUseCase *anticipation.AnticipateUseCase
	cancelUseCase     *anticipation.CancelAnticipationUseCase
}

// NewAnticipationController creates a new anticipation controller instance.
func NewAnticipationController(
	anticipateUseCase *anticipation.AnticipateUseCase,
	cancelUseCase *anticipation.CancelAnticipationUseCase,
) *AnticipationController {
	return &AnticipationController{
		anticipateUseCase: anticipateUseCase,
		cancelUseCase:     cancelUseCase,
	}
}

// Create handles POST /anticipations requests.
func (c *AnticipationController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AnticipateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyInstallmentIDs),
		})
		return
	}

	seriesID, err := uuid.Parse(req.SeriesID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid series ID format",
		})
		return
	}

	installmentIDs := make([]uuid.UUID, 0, len(req.InstallmentIDs))
	for _, idStr := range req.InstallmentIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid installment ID format",
			})
			return
		}
		installmentIDs = append(installmentIDs, id)
	}

	input := anticipation.AnticipateInput{
		UserID:             userID,
		SeriesID:           seriesID,
		InstallmentIDs:     installmentIDs,
		AnticipationPeriod: req.AnticipationPeriod,
		Overrides: anticipation.AnticipateOverrides{
			Note: req.Note,
		},
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Overrides.Amount = &amount
	}
	if input.Overrides.PayerID, err = parseOptionalUUID(req.PayerID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payer ID format"})
		return
	}
	if input.Overrides.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID format"})
		return
	}

	output, err := c.anticipateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnticipationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AnticipateResponse{
		ID:                 output.Record.ID.String(),
		SeriesID:           output.Record.SeriesID.String(),
		AnticipationPeriod: output.Record.AnticipationPeriod,
		ConsumedEntryIDs:   uuidsToStrings(output.Record.ConsumedEntryIDs),
		Settlement:         dto.ToEntryResponse(output.Settlement),
	})
}

// Cancel handles DELETE /anticipations/:id requests.
func (c *AnticipationController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	anticipationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid anticipation ID format",
		})
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), anticipation.CancelAnticipationInput{
		UserID:         userID,
		AnticipationID: anticipationID,
	})
	if err != nil {
		c.handleAnticipationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CancelAnticipationResponse{
		RestoredEntryIDs: uuidsToStrings(output.RestoredEntryIDs),
	})
}

// handleAnticipationError handles anticipation errors and returns appropriate HTTP responses.
func (c *AnticipationController) handleAnticipationError(ctx *gin.Context, err error) {
	var antErr *domainerror.AnticipationError
	if errors.As(err, &antErr) {
		statusCode := c.getStatusCodeForAnticipationError(antErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: antErr.Message,
			Code:  string(antErr.Code),
		})
		return
	}

	var seriesErr *domainerror.SeriesError
	if errors.As(err, &seriesErr) {
		statusCode := http.StatusBadRequest
		if seriesErr.Code == domainerror.ErrCodeSeriesNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: seriesErr.Message,
			Code:  string(seriesErr.Code),
		})
		return
	}

	// A lost race inside the transaction surfaces as a precondition
	// sentinel without the wrapper.
	switch {
	case errors.Is(err, domainerror.ErrInstallmentAlreadyAnticipated):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "installment was already anticipated",
			Code:  string(domainerror.ErrCodeInstallmentAlreadyAnticipated),
		})
	case errors.Is(err, domainerror.ErrInstallmentAlreadySettled):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "installment was already settled",
			Code:  string(domainerror.ErrCodeInstallmentAlreadySettled),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForAnticipationError maps anticipation error codes to HTTP status codes.
func (c *AnticipationController) getStatusCodeForAnticipationError(code domainerror.AnticipationErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyInstallmentIDs,
		domainerror.ErrCodeInvalidAnticipationPeriod:
		return http.StatusBadRequest
	case domainerror.ErrCodeAnticipationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInstallmentNotInSeries,
		domainerror.ErrCodeNotAnInstallment:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInstallmentAlreadyAnticipated,
		domainerror.ErrCodeInstallmentAlreadySettled,
		domainerror.ErrCodeAnticipationAlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
