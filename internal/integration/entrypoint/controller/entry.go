// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/application/usecase/entry"
	"github.com/openmonetis/backend/internal/application/usecase/series"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
	"github.com/openmonetis/backend/internal/integration/entrypoint/dto"
	"github.com/openmonetis/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles ledger entry and series endpoints.
type EntryController struct {
	listUseCase     *entry.ListEntriesUseCase
	getUseCase      *entry.GetEntryUseCase
	updateUseCase   *entry.UpdateEntryUseCase
	deleteUseCase   *entry.DeleteEntryUseCase
	generateUseCase *series.GenerateSeriesUseCase
	resolveUseCase  *series.ResolveScopeUseCase
	bulkEditUseCase *series.ApplyBulkEditUseCase
	bulkDelUseCase  *series.BulkDeleteUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	generateUseCase *series.GenerateSeriesUseCase,
	resolveUseCase *series.ResolveScopeUseCase,
	bulkEditUseCase *series.ApplyBulkEditUseCase,
	bulkDelUseCase *series.BulkDeleteUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		generateUseCase: generateUseCase,
		resolveUseCase:  resolveUseCase,
		bulkEditUseCase: bulkEditUseCase,
		bulkDelUseCase:  bulkDelUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := entry.ListEntriesInput{
		UserID: userID,
		Period: ctx.Query("period"),
		Search: ctx.Query("search"),
	}

	if seriesIDStr := ctx.Query("seriesId"); seriesIDStr != "" {
		if id, err := uuid.Parse(seriesIDStr); err == nil {
			input.SeriesID = &id
		}
	}
	if methodStr := ctx.Query("paymentMethod"); methodStr != "" {
		method := entity.PaymentMethod(methodStr)
		input.PaymentMethod = &method
	}
	if condStr := ctx.Query("condition"); condStr != "" {
		cond := entity.Condition(condStr)
		input.Condition = &cond
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		entryType := entity.TransactionType(typeStr)
		input.Type = &entryType
	}
	if ctx.Query("onlyOpen") == "true" {
		input.OnlyOpen = true
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve entries",
		})
		return
	}

	response := dto.ToEntryListResponse(output.Entries, output.Total, output.Page, output.Limit, output.TotalPages)
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), entry.GetEntryInput{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	patch := adapter.EntryPatch{
		Description:   req.Description,
		ClearCategory: req.ClearCategory,
		Notes:         req.Notes,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		patch.Amount = &amount
	}
	if patch.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID format"})
		return
	}
	if patch.PayerID, err = parseOptionalUUID(req.PayerID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payer ID format"})
		return
	}
	if patch.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID format"})
		return
	}
	if patch.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID format"})
		return
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		patch.DueDate = &dueDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), entry.UpdateEntryInput{
		UserID:  userID,
		EntryID: entryID,
		Patch:   patch,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		UserID:  userID,
		EntryID: entryID,
	}); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Ledger entry deleted successfully"})
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := series.GenerateSeriesInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        decimal.NewFromFloat(req.Amount),
		Type:          entity.TransactionType(req.Type),
		Condition:     entity.Condition(req.Condition),
		Count:         req.Count,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		PurchaseDate:  purchaseDate,
		IsSettled:     req.IsSettled,
		Notes:         req.Notes,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.DueDate = &dueDate
	}

	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID format"})
		return
	}
	if input.PayerID, err = parseOptionalUUID(req.PayerID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payer ID format"})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID format"})
		return
	}
	if input.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID format"})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	response := dto.CreateEntryResponse{
		Entries: make([]dto.EntryResponse, len(output.Entries)),
	}
	if output.SeriesID != nil {
		s := output.SeriesID.String()
		response.SeriesID = &s
	}
	for i, e := range output.Entries {
		response.Entries[i] = dto.ToEntryResponse(e)
	}
	ctx.JSON(http.StatusCreated, response)
}

// ResolveScope handles POST /entries/:id/resolve-scope requests.
func (c *EntryController) ResolveScope(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.ResolveScopeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBulkScope),
		})
		return
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), series.ResolveScopeInput{
		UserID:  userID,
		EntryID: entryID,
		Scope:   series.BulkScope(req.Scope),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	response := dto.ResolveScopeResponse{
		EntryIDs:   uuidsToStrings(output.EntryIDs),
		Degenerate: output.Degenerate,
	}
	if output.SeriesID != nil {
		s := output.SeriesID.String()
		response.SeriesID = &s
	}
	ctx.JSON(http.StatusOK, response)
}

// BulkEdit handles POST /entries/:id/bulk-edit requests.
func (c *EntryController) BulkEdit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.BulkEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	patch := adapter.EntryPatch{
		Description:   req.Description,
		ClearCategory: req.ClearCategory,
		Notes:         req.Notes,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		patch.Amount = &amount
	}
	if patch.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID format"})
		return
	}
	if patch.PayerID, err = parseOptionalUUID(req.PayerID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payer ID format"})
		return
	}
	if patch.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID format"})
		return
	}
	if patch.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID format"})
		return
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		patch.DueDate = &dueDate
	}

	output, err := c.bulkEditUseCase.Execute(ctx.Request.Context(), series.ApplyBulkEditInput{
		UserID:  userID,
		EntryID: entryID,
		Scope:   series.BulkScope(req.Scope),
		Patch:   patch,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkEditResponse{
		EntryIDs:     uuidsToStrings(output.EntryIDs),
		UpdatedCount: output.UpdatedCount,
		Degenerate:   output.Degenerate,
	})
}

// BulkDelete handles POST /entries/:id/bulk-delete requests.
func (c *EntryController) BulkDelete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.bulkDelUseCase.Execute(ctx.Request.Context(), series.BulkDeleteInput{
		UserID:  userID,
		EntryID: entryID,
		Scope:   series.BulkScope(req.Scope),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkDeleteResponse{
		EntryIDs:     uuidsToStrings(output.EntryIDs),
		DeletedCount: output.DeletedCount,
		Degenerate:   output.Degenerate,
	})
}

// handleEntryError handles entry and series errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		statusCode := c.getStatusCodeForEntryError(entryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
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

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeEntryIDsNotFound,
		domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidCondition,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeMissingEntryFields,
		domainerror.ErrCodeInvalidEntryDate,
		domainerror.ErrCodeEmptyEntryIDs:
		return http.StatusBadRequest
	case domainerror.ErrCodeConcurrentModification:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
