package dto

// ResolveScopeRequest represents the request body for scope resolution.
type ResolveScopeRequest struct {
	Scope string `json:"scope" binding:"required,oneof=current future all"`
}

// ResolveScopeResponse represents the resolved entry set.
type ResolveScopeResponse struct {
	SeriesID   *string  `json:"series_id,omitempty"`
	EntryIDs   []string `json:"entry_ids"`
	Degenerate bool     `json:"degenerate"`
}

// BulkEditRequest represents the request body for a scoped bulk edit.
type BulkEditRequest struct {
	Scope         string   `json:"scope" binding:"required,oneof=current future all"`
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

// BulkEditResponse represents the response for a scoped bulk edit.
type BulkEditResponse struct {
	EntryIDs     []string `json:"entry_ids"`
	UpdatedCount int64    `json:"updated_count"`
	Degenerate   bool     `json:"degenerate"`
}

// BulkDeleteRequest represents the request body for a scoped bulk delete.
type BulkDeleteRequest struct {
	Scope string `json:"scope" binding:"required,oneof=current future all"`
}

// BulkDeleteResponse represents the response for a scoped bulk delete.
type BulkDeleteResponse struct {
	EntryIDs     []string `json:"entry_ids"`
	DeletedCount int64    `json:"deleted_count"`
	Degenerate   bool     `json:"degenerate"`
}
