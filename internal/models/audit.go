package models

// AuditAction - действие, зафиксированное в журнале изменений
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

// AuditEntry представляет одну запись журнала изменений бедствия.
// Записи только добавляются, существующие никогда не меняются.
type AuditEntry struct {
	Action    AuditAction `json:"action"`
	UserID    string      `json:"user_id"`
	Timestamp string      `json:"timestamp"` // ISO-8601 (RFC 3339)
}
