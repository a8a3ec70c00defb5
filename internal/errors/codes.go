package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication and session error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthNoActiveSession    ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound           ErrorCode = "ACCOUNT_001"
	AccountCloseCredentials   ErrorCode = "ACCOUNT_002"
	AccountProvisioningFailed ErrorCode = "ACCOUNT_003"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferInvalidAmount     ErrorCode = "TRANSFER_002"
	TransferInsufficientFunds ErrorCode = "TRANSFER_003"
	TransferRecipientNotFound ErrorCode = "TRANSFER_004"
)

// Loan error codes (LOAN_*)
const (
	LoanInvalidAmount ErrorCode = "LOAN_001"
	LoanNotQualified  ErrorCode = "LOAN_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid username or PIN",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Session has expired, please log in again",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthNoActiveSession:    "No active session for this operation",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Account errors
	AccountNotFound:           "Account not found",
	AccountCloseCredentials:   "Username or PIN does not match the current account",
	AccountProvisioningFailed: "Account could not be provisioned",

	// Transfer errors
	TransferSameAccount:       "Cannot transfer to your own account",
	TransferInvalidAmount:     "Transfer amount must be positive",
	TransferInsufficientFunds: "Balance is insufficient for this transfer",
	TransferRecipientNotFound: "Recipient account not found",

	// Loan errors
	LoanInvalidAmount: "Loan amount must be positive",
	LoanNotQualified:  "No deposit large enough to qualify for this loan",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
