package dto

// AnticipateRequest represents the request body for anticipating installments.
type AnticipateRequest struct {
	SeriesID           string   `json:"series_id" binding:"required"`
	InstallmentIDs     []string `json:"installment_ids" binding:"required,min=1"`
	AnticipationPeriod string   `json:"anticipation_period" binding:"required"`
	Amount             *float64 `json:"amount,omitempty"`
	PayerID            *string  `json:"payer_id,omitempty"`
	CategoryID         *string  `json:"category_id,omitempty"`
	Note               *string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// AnticipateResponse represents the response for an anticipation.
type AnticipateResponse struct {
	ID                 string        `json:"id"`
	SeriesID           string        `json:"series_id"`
	AnticipationPeriod string        `json:"anticipation_period"`
	ConsumedEntryIDs   []string      `json:"consumed_entry_ids"`
	Settlement         EntryResponse `json:"settlement"`
}

// CancelAnticipationResponse represents the response for an anticipation reversal.
type CancelAnticipationResponse struct {
	RestoredEntryIDs []string `json:"restored_entry_ids"`
}
