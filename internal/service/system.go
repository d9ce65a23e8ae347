package service

import (
	"strings"

	"contractdesk/internal/store"
	"contractdesk/models"
)

// SystemService holds the cross-cutting pieces: the audit trail, the
// dashboard configuration blob and the static permission catalog.
type SystemService struct {
	store *store.Store
	opts  options
}

func NewSystemService(st *store.Store, opts ...Option) *SystemService {
	return &SystemService{store: st, opts: newOptions(opts)}
}

// Record appends one audit entry. Failures to write the trail never block
// the operation that triggered it.
func (s *SystemService) Record(entryType, username, operation, ip string) {
	_ = s.store.Write(func(d *store.Data) error {
		d.AuditLog = append(d.AuditLog, models.AuditEntry{
			ID:         d.NextAuditID(),
			Type:       entryType,
			Username:   username,
			Operation:  operation,
			IP:         ip,
			CreateTime: s.opts.stamp(),
		})
		return nil
	})
}

// AuditQuery narrows the audit listing. StartTime/EndTime compare against
// the entry stamp lexicographically, which is sound for the fixed
// YYYY-MM-DD HH:MM:SS layout.
type AuditQuery struct {
	Type      string
	Username  string
	StartTime string
	EndTime   string
	PageNum   int
	PageSize  int
}

// ListLogs pages through the audit trail in insertion order.
func (s *SystemService) ListLogs(q AuditQuery) store.Page[models.AuditEntry] {
	s.opts.pause()
	var page store.Page[models.AuditEntry]
	_ = s.store.View(func(d *store.Data) error {
		filtered := make([]models.AuditEntry, 0, len(d.AuditLog))
		for _, e := range d.AuditLog {
			if q.Type != "" && e.Type != q.Type {
				continue
			}
			if q.Username != "" && !strings.Contains(e.Username, q.Username) {
				continue
			}
			if q.StartTime != "" && e.CreateTime < q.StartTime {
				continue
			}
			if q.EndTime != "" && e.CreateTime > q.EndTime {
				continue
			}
			filtered = append(filtered, e)
		}
		page = store.Paginate(filtered, q.PageNum, q.PageSize)
		return nil
	})
	return page
}

// Config returns the dashboard configuration.
func (s *SystemService) Config() models.SystemConfig {
	s.opts.pause()
	var cfg models.SystemConfig
	_ = s.store.View(func(d *store.Data) error {
		cfg = d.Config
		return nil
	})
	return cfg
}

// UpdateConfig replaces the dashboard configuration.
func (s *SystemService) UpdateConfig(cfg models.SystemConfig, actor models.SessionUser) {
	s.opts.pause()
	_ = s.store.Write(func(d *store.Data) error {
		d.Config = cfg
		return nil
	})
	s.Record(models.AuditOperation, actor.Username, "updated system config", "")
}

// PermissionTree returns the static permission catalog shown in the role
// editor.
func (s *SystemService) PermissionTree() []models.Permission {
	s.opts.pause()
	return []models.Permission{
		{
			ID: 1, Name: "System Administration", Code: "system",
			Children: []models.Permission{
				{ID: 101, Name: "User Management", Code: "system:user"},
				{ID: 102, Name: "Role Management", Code: "system:role"},
				{ID: 103, Name: "Department Management", Code: "system:department"},
			},
		},
		{
			ID: 2, Name: "Contract Management", Code: "contract",
			Children: []models.Permission{
				{ID: 201, Name: "Payment Contracts", Code: "contract:payment"},
				{ID: 202, Name: "Receipt Contracts", Code: "contract:receipt"},
			},
		},
		{
			ID: 3, Name: "Payment Management", Code: "payment",
			Children: []models.Permission{
				{ID: 301, Name: "Payment Records", Code: "payment:record"},
			},
		},
		{
			ID: 4, Name: "Receipt Management", Code: "receipt",
			Children: []models.Permission{
				{ID: 401, Name: "Receipt Records", Code: "receipt:record"},
			},
		},
	}
}
