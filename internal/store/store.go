package store

import (
	"sync"

	"contractdesk/models"
)

// Data is the full in-memory dataset: the sole source of truth for every
// service. Collections keep insertion order; mutations happen in place
// through Store.Write.
type Data struct {
	Users            []models.User
	Departments      []models.Department
	Roles            []models.Role
	PaymentContracts []models.PaymentContract
	ReceiptContracts []models.ReceiptContract
	Payments         []models.PaymentRecord
	Receipts         []models.ReceiptRecord
	AuditLog         []models.AuditEntry
	Config           models.SystemConfig
}

// Store guards the dataset with a single-writer/multiple-reader discipline
// so each service operation is an atomic transformation (the system has no
// other mutation path). Construct one per process, or per test.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store populated with the demo dataset.
func NewSeeded() *Store {
	s := &Store{}
	s.data = seedData()
	return s
}

// View runs fn with shared read access to the dataset. fn must not retain
// references past its return.
func (s *Store) View(fn func(d *Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// Write runs fn with exclusive access to the dataset.
func (s *Store) Write(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// NextUserID assigns the next user id: max(existing)+1, or 1 when the
// collection is empty. Same scheme for every collection below.
func (d *Data) NextUserID() int64 {
	var max int64
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (d *Data) NextDepartmentID() int64 {
	var max int64
	for _, dep := range d.Departments {
		if dep.ID > max {
			max = dep.ID
		}
	}
	return max + 1
}

func (d *Data) NextRoleID() int64 {
	var max int64
	for _, r := range d.Roles {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func (d *Data) NextPaymentContractID() int64 {
	var max int64
	for _, c := range d.PaymentContracts {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (d *Data) NextReceiptContractID() int64 {
	var max int64
	for _, c := range d.ReceiptContracts {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (d *Data) NextPaymentID() int64 {
	var max int64
	for _, p := range d.Payments {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (d *Data) NextReceiptID() int64 {
	var max int64
	for _, r := range d.Receipts {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func (d *Data) NextAuditID() int64 {
	var max int64
	for _, e := range d.AuditLog {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// FindUser returns a pointer into the Users collection, or nil.
func (d *Data) FindUser(id int64) *models.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByName matches the username case-sensitively.
func (d *Data) FindUserByName(username string) *models.User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Data) FindDepartment(id int64) *models.Department {
	for i := range d.Departments {
		if d.Departments[i].ID == id {
			return &d.Departments[i]
		}
	}
	return nil
}

func (d *Data) FindRole(id int64) *models.Role {
	for i := range d.Roles {
		if d.Roles[i].ID == id {
			return &d.Roles[i]
		}
	}
	return nil
}

func (d *Data) FindPaymentContract(id int64) *models.PaymentContract {
	for i := range d.PaymentContracts {
		if d.PaymentContracts[i].ID == id {
			return &d.PaymentContracts[i]
		}
	}
	return nil
}

func (d *Data) FindReceiptContract(id int64) *models.ReceiptContract {
	for i := range d.ReceiptContracts {
		if d.ReceiptContracts[i].ID == id {
			return &d.ReceiptContracts[i]
		}
	}
	return nil
}

// DepartmentName resolves a department id to its name, or "".
func (d *Data) DepartmentName(id int64) string {
	if dep := d.FindDepartment(id); dep != nil {
		return dep.Name
	}
	return ""
}

// PaymentRecordsFor returns the payment records of one contract in
// insertion order.
func (d *Data) PaymentRecordsFor(contractID int64) []models.PaymentRecord {
	out := make([]models.PaymentRecord, 0)
	for _, p := range d.Payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out
}

// ReceiptRecordsFor returns the receipt records of one contract in
// insertion order.
func (d *Data) ReceiptRecordsFor(contractID int64) []models.ReceiptRecord {
	out := make([]models.ReceiptRecord, 0)
	for _, r := range d.Receipts {
		if r.ContractID == contractID {
			out = append(out, r)
		}
	}
	return out
}
