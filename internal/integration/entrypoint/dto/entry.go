package dto

import (
	"time"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation. A
// non-single condition expands into a series of count entries.
type CreateEntryRequest struct {
	Description   string  `json:"description" binding:"required,min=1,max=255"`
	Amount        float64 `json:"amount" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=expense income internal-transfer"`
	Condition     string  `json:"condition" binding:"required,oneof=single installment recurring"`
	Count         int     `json:"count,omitempty"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PurchaseDate  string  `json:"purchase_date" binding:"required"`
	DueDate       *string `json:"due_date,omitempty"`
	IsSettled     *bool   `json:"is_settled,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	PayerID       *string `json:"payer_id,omitempty"`
	AccountID     *string `json:"account_id,omitempty"`
	CardID        *string `json:"card_id,omitempty"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateEntryRequest represents the request body for a single-entry update.
// Only mutable fields are present; series identity and position fields go
// through the series operations.
type UpdateEntryRequest struct {
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *float64 `json:"amount,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	PayerID       *string  `json:"payer_id,omitempty"`
	AccountID     *string  `json:"account_id,omitempty"`
	CardID        *string  `json:"card_id,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	DueDate       *string  `json:"due_date,omitempty"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Description          string    `json:"description"`
	Amount               string    `json:"amount"`
	Type                 string    `json:"type"`
	Condition            string    `json:"condition"`
	SeriesID             *string   `json:"series_id,omitempty"`
	InstallmentCurrent   *int      `json:"installment_current,omitempty"`
	InstallmentTotal     *int      `json:"installment_total,omitempty"`
	PurchaseDate         string    `json:"purchase_date"`
	OriginalPurchaseDate *string   `json:"original_purchase_date,omitempty"`
	Period               string    `json:"period"`
	PaymentMethod        string    `json:"payment_method"`
	IsSettled            *bool     `json:"is_settled,omitempty"`
	DueDate              *string   `json:"due_date,omitempty"`
	IsAnticipated        bool      `json:"is_anticipated"`
	CategoryID           *string   `json:"category_id,omitempty"`
	PayerID              *string   `json:"payer_id,omitempty"`
	AccountID            *string   `json:"account_id,omitempty"`
	CardID               *string   `json:"card_id,omitempty"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// EntryPaginationResponse represents pagination information in API responses.
type EntryPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// EntryListResponse represents the response for listing ledger entries.
type EntryListResponse struct {
	Entries    []EntryResponse         `json:"entries"`
	Pagination EntryPaginationResponse `json:"pagination"`
}

// CreateEntryResponse represents the response for entry creation.
type CreateEntryResponse struct {
	SeriesID *string         `json:"series_id,omitempty"`
	Entries  []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain LedgerEntry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.LedgerEntry) EntryResponse {
	response := EntryResponse{
		ID:                 e.ID.String(),
		UserID:             e.UserID.String(),
		Description:        e.Description,
		Amount:             e.Amount.String(),
		Type:               string(e.Type),
		Condition:          string(e.Condition),
		InstallmentCurrent: e.InstallmentCurrent,
		InstallmentTotal:   e.InstallmentTotal,
		PurchaseDate:       e.PurchaseDate.Format("2006-01-02"),
		Period:             e.Period,
		PaymentMethod:      string(e.PaymentMethod),
		IsSettled:          e.IsSettled,
		IsAnticipated:      e.IsAnticipated,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	if e.SeriesID != nil {
		s := e.SeriesID.String()
		response.SeriesID = &s
	}
	if e.OriginalPurchaseDate != nil {
		d := e.OriginalPurchaseDate.Format("2006-01-02")
		response.OriginalPurchaseDate = &d
	}
	if e.DueDate != nil {
		d := e.DueDate.Format("2006-01-02")
		response.DueDate = &d
	}
	if e.CategoryID != nil {
		s := e.CategoryID.String()
		response.CategoryID = &s
	}
	if e.PayerID != nil {
		s := e.PayerID.String()
		response.PayerID = &s
	}
	if e.AccountID != nil {
		s := e.AccountID.String()
		response.AccountID = &s
	}
	if e.CardID != nil {
		s := e.CardID.String()
		response.CardID = &s
	}

	return response
}

// ToEntryListResponse converts entries plus pagination data to an EntryListResponse.
func ToEntryListResponse(entries []*entity.LedgerEntry, total int64, page, limit, totalPages int) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToEntryResponse(e)
	}
	return EntryListResponse{
		Entries: responses,
		Pagination: EntryPaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
