package dto

// Operation Request DTOs

// TransferRequest asks to move an amount to another account
type TransferRequest struct {
	To     string  `json:"to" validate:"required,username"`
	Amount float64 `json:"amount" validate:"required,positive_amount"`
}

// LoanRequest asks for a loan deposit on the current account
type LoanRequest struct {
	Amount float64 `json:"amount" validate:"required,positive_amount"`
}

// CloseAccountRequest re-confirms credentials before closing the
// current account
type CloseAccountRequest struct {
	Username string `json:"username" validate:"required,username"`
	PIN      int    `json:"pin" validate:"required,pin"`
}

// Operation Response DTOs

// OperationResponse acknowledges a completed ledger operation
type OperationResponse struct {
	Message string `json:"message"`
}
