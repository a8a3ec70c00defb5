package dto

import "time"

// Account Response DTOs

// MovementResponse is one ledger row as shown to the account holder
type MovementResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Formatted  string    `json:"formatted"`
	RecordedAt time.Time `json:"recordedAt"`
}

// MovementsResponse is the movement list plus the sort state it was
// rendered with
type MovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	Sorted    bool               `json:"sorted"`
	Count     int                `json:"count"`
}

// SummaryResponse carries the four derived figures, raw and formatted
type SummaryResponse struct {
	Balance           string `json:"balance"`
	BalanceFormatted  string `json:"balanceFormatted"`
	In                string `json:"in"`
	InFormatted       string `json:"inFormatted"`
	Out               string `json:"out"`
	OutFormatted      string `json:"outFormatted"`
	Interest          string `json:"interest"`
	InterestFormatted string `json:"interestFormatted"`
}

// SortStateResponse reports the session sort flag after a toggle
type SortStateResponse struct {
	Sorted bool `json:"sorted"`
}

// AuditEntryResponse is one audit log row
type AuditEntryResponse struct {
	ID        string                 `json:"id"`
	Username  string                 `json:"username"`
	Action    string                 `json:"action"`
	Succeeded bool                   `json:"succeeded"`
	Reason    string                 `json:"reason,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
