package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin         = "session.login"
	AuditActionFailedLogin   = "session.failed_login"
	AuditActionLogout        = "session.logout"
	AuditActionTransfer      = "ledger.transfer"
	AuditActionLoan          = "ledger.loan"
	AuditActionAccountClosed = "account.closed"
)

// AuditLog records one ledger operation, successful or not. The store
// lives in an in-memory sqlite database and is not kept across restarts.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"type:varchar(50);index" json:"username,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Succeeded bool      `gorm:"not null" json:"succeeded"`
	Reason    string    `gorm:"type:varchar(100)" json:"reason,omitempty"`
	Metadata  JSONMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) String() string {
	user := "anonymous"
	if al.Username != "" {
		user = al.Username
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Succeeded: %t, Time: %s]",
		user, al.Action, al.Succeeded, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONMap is a map field stored as a JSON text column.
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Stored as string for sqlite compatibility
	return string(bytes), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
