package models

// Kind discriminates the two contract variants. A payment contract is one
// under which we owe money to the counterparty; a receipt contract is one
// under which the counterparty owes us.
type Kind string

const (
	KindPayment Kind = "payment"
	KindReceipt Kind = "receipt"
)

// Contract status labels. There is no enforced transition graph: status
// changes are direct overwrites.
const (
	ContractStatusActive     = "active"
	ContractStatusExecuting  = "executing"
	ContractStatusTerminated = "terminated"
)

// ContractBase holds the fields shared by both contract variants.
type ContractBase struct {
	ID             int64   `json:"id"`
	ContractNo     string  `json:"contractNo"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	PartyA         string  `json:"partyA"`
	PartyB         string  `json:"partyB"`
	SignDate       string  `json:"signDate"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	ContractType   Kind    `json:"contractType"`
	DepartmentID   int64   `json:"departmentId"`
	Department     string  `json:"department"`
	CreateUserID   int64   `json:"createUserId"`
	CreateUserName string  `json:"createUserName"`
	CreateTime     string  `json:"createTime"`
}

// PaymentContract tracks how much of the contract value has been paid out.
// Invariant: PaidAmount + UnpaidAmount == Amount after every mutation.
type PaymentContract struct {
	ContractBase
	PaidAmount   float64 `json:"paidAmount"`
	UnpaidAmount float64 `json:"unpaidAmount"`
}

// ReceiptContract tracks how much of the contract value has been collected.
// Invariant: ReceivedAmount + UnreceiveAmount == Amount after every mutation.
type ReceiptContract struct {
	ContractBase
	ReceivedAmount  float64 `json:"receivedAmount"`
	UnreceiveAmount float64 `json:"unreceiveAmount"`
}

// ContractInput carries the caller-settable fields for creating or updating a
// contract. System-owned fields (id, contractType, accumulated amounts,
// creator identity, createTime) are never taken from the caller.
type ContractInput struct {
	ContractNo   string  `json:"contractNo" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type"`
	PartyA       string  `json:"partyA"`
	PartyB       string  `json:"partyB"`
	SignDate     string  `json:"signDate"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Amount       float64 `json:"amount" binding:"required"`
	DepartmentID int64   `json:"departmentId"`
	Department   string  `json:"department"`
}

// ContractDetail is a contract of either variant together with its records.
// Exactly one of Payment/Receipt is set.
type ContractDetail struct {
	Payment *PaymentContract `json:"payment,omitempty"`
	Receipt *ReceiptContract `json:"receipt,omitempty"`
	Records any              `json:"records"`
}
