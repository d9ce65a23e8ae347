package models

// Audit entry types.
const (
	AuditLogin     = "login"
	AuditOperation = "operation"
	AuditError     = "error"
)

// AuditEntry is one line of the system audit trail.
type AuditEntry struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Username   string `json:"username"`
	Operation  string `json:"operation"`
	IP         string `json:"ip"`
	CreateTime string `json:"createTime"`
}

// SystemConfig is the dashboard configuration blob.
type SystemConfig struct {
	SiteName string `json:"siteName"`
	Logo     string `json:"logo"`
	Footer   string `json:"footer"`
	Theme    struct {
		PrimaryColor string `json:"primaryColor"`
		MenuTheme    string `json:"menuTheme"`
	} `json:"theme"`
	Security struct {
		PasswordExpireDays int `json:"passwordExpireDays"`
		LoginRetryLimit    int `json:"loginRetryLimit"`
		LockTime           int `json:"lockTime"`
	} `json:"security"`
	Upload struct {
		MaxSize    int    `json:"maxSize"`
		AllowTypes string `json:"allowTypes"`
	} `json:"upload"`
}
