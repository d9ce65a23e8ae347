package models

// Record number prefixes, combined with the contract number and a 1-based
// per-contract sequence: PAY-{contractNo}-{seq}, REC-{contractNo}-{seq}.
const (
	PaymentNoPrefix = "PAY"
	ReceiptNoPrefix = "REC"
)

// PaymentRecord is a single payment applied against a payment contract's
// outstanding balance. Records are immutable once created and are only
// removed together with their parent contract.
type PaymentRecord struct {
	ID              int64   `json:"id"`
	ContractID      int64   `json:"contractId"`
	ContractName    string  `json:"contractName"`
	PaymentNo       string  `json:"paymentNo"`
	PaymentDate     string  `json:"paymentDate"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentAccount  string  `json:"paymentAccount"`
	ReceiverAccount string  `json:"receiverAccount"`
	Remark          string  `json:"remark"`
	CreateUserID    int64   `json:"createUserId"`
	CreateUserName  string  `json:"createUserName"`
	CreateTime      string  `json:"createTime"`
}

// ReceiptRecord is a single collection applied against a receipt contract's
// outstanding balance.
type ReceiptRecord struct {
	ID             int64   `json:"id"`
	ContractID     int64   `json:"contractId"`
	ContractName   string  `json:"contractName"`
	ReceiptNo      string  `json:"receiptNo"`
	ReceiptDate    string  `json:"receiptDate"`
	Amount         float64 `json:"amount"`
	ReceiptMethod  string  `json:"receiptMethod"`
	ReceiptAccount string  `json:"receiptAccount"`
	PayerAccount   string  `json:"payerAccount"`
	Remark         string  `json:"remark"`
	CreateUserID   int64   `json:"createUserId"`
	CreateUserName string  `json:"createUserName"`
	CreateTime     string  `json:"createTime"`
}

// RecordInput carries the caller-settable fields of a new payment or receipt
// record. The record number, id and creator stamp are system-owned.
type RecordInput struct {
	Amount          float64 `json:"amount" binding:"required"`
	Date            string  `json:"date"`
	Method          string  `json:"method"`
	PaymentAccount  string  `json:"paymentAccount"`
	ReceiverAccount string  `json:"receiverAccount"`
	Remark          string  `json:"remark"`
}
