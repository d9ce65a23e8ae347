package models

// Statistics is the dashboard aggregate over both contract collections.
// The monthly series are 12 buckets of contract value keyed by the sign
// date's calendar month in UTC, index 0 = January.
type Statistics struct {
	PaymentContractCount int64       `json:"paymentContractCount"`
	ReceiptContractCount int64       `json:"receiptContractCount"`
	TotalPaymentAmount   float64     `json:"totalPaymentAmount"`
	TotalPaidAmount      float64     `json:"totalPaidAmount"`
	TotalReceiptAmount   float64     `json:"totalReceiptAmount"`
	TotalReceivedAmount  float64     `json:"totalReceivedAmount"`
	PaymentMonthlyData   [12]float64 `json:"paymentMonthlyData"`
	ReceiptMonthlyData   [12]float64 `json:"receiptMonthlyData"`
}
