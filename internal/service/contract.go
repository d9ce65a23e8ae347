package service

import (
	"fmt"

	"contractdesk/internal/store"
	"contractdesk/models"
)

// ContractService owns the lifecycle of payment and receipt contracts and
// their records. All financial mutations preserve the split invariant:
// paid+unpaid (or received+unreceive) always equals the contract amount.
type ContractService struct {
	store *store.Store
	audit *SystemService
	opts  options
}

func NewContractService(st *store.Store, audit *SystemService, opts ...Option) *ContractService {
	return &ContractService{store: st, audit: audit, opts: newOptions(opts)}
}

// ListPayment returns a filtered page of payment contracts. The keyword
// matches contract number, name and counterparty (party B).
func (s *ContractService) ListPayment(q store.Query) store.Page[models.PaymentContract] {
	s.opts.pause()
	var page store.Page[models.PaymentContract]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.PaymentContracts, q,
			func(c models.PaymentContract) []string { return []string{c.ContractNo, c.Name, c.PartyB} },
			func(c models.PaymentContract) string { return c.Status },
			func(c models.PaymentContract) int64 { return c.DepartmentID },
		)
		return nil
	})
	return page
}

// ListReceipt returns a filtered page of receipt contracts. The keyword
// matches contract number, name and counterparty (party A).
func (s *ContractService) ListReceipt(q store.Query) store.Page[models.ReceiptContract] {
	s.opts.pause()
	var page store.Page[models.ReceiptContract]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.ReceiptContracts, q,
			func(c models.ReceiptContract) []string { return []string{c.ContractNo, c.Name, c.PartyA} },
			func(c models.ReceiptContract) string { return c.Status },
			func(c models.ReceiptContract) int64 { return c.DepartmentID },
		)
		return nil
	})
	return page
}

// Detail looks the id up in the payment collection first, then receipt, and
// attaches the matching contract's records.
func (s *ContractService) Detail(id int64) (*models.ContractDetail, error) {
	s.opts.pause()
	var detail *models.ContractDetail
	err := s.store.View(func(d *store.Data) error {
		if c := d.FindPaymentContract(id); c != nil {
			cc := *c
			detail = &models.ContractDetail{Payment: &cc, Records: d.PaymentRecordsFor(id)}
			return nil
		}
		if c := d.FindReceiptContract(id); c != nil {
			cc := *c
			detail = &models.ContractDetail{Receipt: &cc, Records: d.ReceiptRecordsFor(id)}
			return nil
		}
		return models.NotFoundError{Resource: "contract"}
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// AddPayment creates a payment contract with a zero paid amount and the
// full value outstanding.
func (s *ContractService) AddPayment(in models.ContractInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		id = d.NextPaymentContractID()
		c := models.PaymentContract{
			ContractBase: s.newBase(d, id, in, models.KindPayment, actor),
			PaidAmount:   0,
			UnpaidAmount: in.Amount,
		}
		d.PaymentContracts = append(d.PaymentContracts, c)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("created payment contract %s", in.ContractNo))
	return id, nil
}

// AddReceipt creates a receipt contract with a zero received amount and the
// full value outstanding.
func (s *ContractService) AddReceipt(in models.ContractInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		id = d.NextReceiptContractID()
		c := models.ReceiptContract{
			ContractBase:    s.newBase(d, id, in, models.KindReceipt, actor),
			ReceivedAmount:  0,
			UnreceiveAmount: in.Amount,
		}
		d.ReceiptContracts = append(d.ReceiptContracts, c)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("created receipt contract %s", in.ContractNo))
	return id, nil
}

func (s *ContractService) newBase(d *store.Data, id int64, in models.ContractInput, kind models.Kind, actor models.SessionUser) models.ContractBase {
	department := in.Department
	if department == "" {
		department = d.DepartmentName(in.DepartmentID)
	}
	return models.ContractBase{
		ID:             id,
		ContractNo:     in.ContractNo,
		Name:           in.Name,
		Type:           in.Type,
		PartyA:         in.PartyA,
		PartyB:         in.PartyB,
		SignDate:       in.SignDate,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Amount:         in.Amount,
		Status:         models.ContractStatusActive,
		ContractType:   kind,
		DepartmentID:   in.DepartmentID,
		Department:     department,
		CreateUserID:   actor.ID,
		CreateUserName: actor.Name,
		CreateTime:     s.opts.stamp(),
	}
}

// Update overwrites the caller-settable fields of a contract of either
// variant. The contract type and the accumulated paid/received amount are
// system-owned; the outstanding amount is recomputed against the new value.
func (s *ContractService) Update(id int64, in models.ContractInput, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		if c := d.FindPaymentContract(id); c != nil {
			applyInput(&c.ContractBase, in, d)
			c.UnpaidAmount = in.Amount - c.PaidAmount
			return nil
		}
		if c := d.FindReceiptContract(id); c != nil {
			applyInput(&c.ContractBase, in, d)
			c.UnreceiveAmount = in.Amount - c.ReceivedAmount
			return nil
		}
		return models.NotFoundError{Resource: "contract"}
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("updated contract %s", in.ContractNo))
	return nil
}

// applyInput writes the caller-settable fields onto an existing contract.
// ID, ContractType, Status, creator stamp and CreateTime stay untouched.
func applyInput(base *models.ContractBase, in models.ContractInput, d *store.Data) {
	base.ContractNo = in.ContractNo
	base.Name = in.Name
	base.Type = in.Type
	base.PartyA = in.PartyA
	base.PartyB = in.PartyB
	base.SignDate = in.SignDate
	base.StartDate = in.StartDate
	base.EndDate = in.EndDate
	base.Amount = in.Amount
	base.DepartmentID = in.DepartmentID
	if in.Department != "" {
		base.Department = in.Department
	} else {
		base.Department = d.DepartmentName(in.DepartmentID)
	}
}

// Delete removes a contract from whichever collection contains it, together
// with its records so no orphans survive.
func (s *ContractService) Delete(id int64, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		for i := range d.PaymentContracts {
			if d.PaymentContracts[i].ID == id {
				d.PaymentContracts = append(d.PaymentContracts[:i], d.PaymentContracts[i+1:]...)
				d.Payments = dropPayments(d.Payments, id)
				return nil
			}
		}
		for i := range d.ReceiptContracts {
			if d.ReceiptContracts[i].ID == id {
				d.ReceiptContracts = append(d.ReceiptContracts[:i], d.ReceiptContracts[i+1:]...)
				d.Receipts = dropReceipts(d.Receipts, id)
				return nil
			}
		}
		return models.NotFoundError{Resource: "contract"}
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("deleted contract %d", id))
	return nil
}

func dropPayments(records []models.PaymentRecord, contractID int64) []models.PaymentRecord {
	out := records[:0]
	for _, r := range records {
		if r.ContractID != contractID {
			out = append(out, r)
		}
	}
	return out
}

func dropReceipts(records []models.ReceiptRecord, contractID int64) []models.ReceiptRecord {
	out := records[:0]
	for _, r := range records {
		if r.ContractID != contractID {
			out = append(out, r)
		}
	}
	return out
}

// ChangeStatus overwrites the status label of a contract of either variant.
func (s *ContractService) ChangeStatus(id int64, status string, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		if c := d.FindPaymentContract(id); c != nil {
			c.Status = status
			return nil
		}
		if c := d.FindReceiptContract(id); c != nil {
			c.Status = status
			return nil
		}
		return models.NotFoundError{Resource: "contract"}
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("changed contract %d status to %s", id, status))
	return nil
}

// AddPaymentRecord stores a payment against a payment contract and moves
// its balance: paid grows by the record amount, unpaid is recomputed from
// the authoritative total rather than decremented, so the two fields cannot
// drift apart.
func (s *ContractService) AddPaymentRecord(contractID int64, in models.RecordInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		c := d.FindPaymentContract(contractID)
		if c == nil {
			return models.NotFoundError{Resource: "contract"}
		}
		id = d.NextPaymentID()
		seq := len(d.PaymentRecordsFor(contractID)) + 1
		d.Payments = append(d.Payments, models.PaymentRecord{
			ID:              id,
			ContractID:      contractID,
			ContractName:    c.Name,
			PaymentNo:       fmt.Sprintf("%s-%s-%d", models.PaymentNoPrefix, c.ContractNo, seq),
			PaymentDate:     in.Date,
			Amount:          in.Amount,
			PaymentMethod:   in.Method,
			PaymentAccount:  in.PaymentAccount,
			ReceiverAccount: in.ReceiverAccount,
			Remark:          in.Remark,
			CreateUserID:    actor.ID,
			CreateUserName:  actor.Name,
			CreateTime:      s.opts.stamp(),
		})
		c.PaidAmount += in.Amount
		c.UnpaidAmount = c.Amount - c.PaidAmount
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("added payment record to contract %d", contractID))
	return id, nil
}

// AddReceiptRecord stores a collection against a receipt contract, with the
// same recompute-from-total discipline as AddPaymentRecord.
func (s *ContractService) AddReceiptRecord(contractID int64, in models.RecordInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		c := d.FindReceiptContract(contractID)
		if c == nil {
			return models.NotFoundError{Resource: "contract"}
		}
		id = d.NextReceiptID()
		seq := len(d.ReceiptRecordsFor(contractID)) + 1
		d.Receipts = append(d.Receipts, models.ReceiptRecord{
			ID:             id,
			ContractID:     contractID,
			ContractName:   c.Name,
			ReceiptNo:      fmt.Sprintf("%s-%s-%d", models.ReceiptNoPrefix, c.ContractNo, seq),
			ReceiptDate:    in.Date,
			Amount:         in.Amount,
			ReceiptMethod:  in.Method,
			ReceiptAccount: in.ReceiverAccount,
			PayerAccount:   in.PaymentAccount,
			Remark:         in.Remark,
			CreateUserID:   actor.ID,
			CreateUserName: actor.Name,
			CreateTime:     s.opts.stamp(),
		})
		c.ReceivedAmount += in.Amount
		c.UnreceiveAmount = c.Amount - c.ReceivedAmount
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("added receipt record to contract %d", contractID))
	return id, nil
}

// ListPaymentRecords pages through all payment records; the keyword matches
// the record number and the contract name.
func (s *ContractService) ListPaymentRecords(q store.Query) store.Page[models.PaymentRecord] {
	s.opts.pause()
	var page store.Page[models.PaymentRecord]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.Payments, q,
			func(r models.PaymentRecord) []string { return []string{r.PaymentNo, r.ContractName} },
			nil, nil,
		)
		return nil
	})
	return page
}

// ListReceiptRecords pages through all receipt records.
func (s *ContractService) ListReceiptRecords(q store.Query) store.Page[models.ReceiptRecord] {
	s.opts.pause()
	var page store.Page[models.ReceiptRecord]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.Receipts, q,
			func(r models.ReceiptRecord) []string { return []string{r.ReceiptNo, r.ContractName} },
			nil, nil,
		)
		return nil
	})
	return page
}

func (s *ContractService) record(actor models.SessionUser, operation string) {
	if s.audit != nil {
		s.audit.Record(models.AuditOperation, actor.Username, operation, "")
	}
}
