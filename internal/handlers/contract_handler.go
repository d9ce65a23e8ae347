package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"contractdesk/internal/middleware"
	"contractdesk/models"
)

// ListPaymentContracts returns a filtered page of payment contracts.
func (h *Handler) ListPaymentContracts(c *gin.Context) {
	respondOK(c, h.contracts.ListPayment(listQuery(c)))
}

// ListReceiptContracts returns a filtered page of receipt contracts.
func (h *Handler) ListReceiptContracts(c *gin.Context) {
	respondOK(c, h.contracts.ListReceipt(listQuery(c)))
}

// GetContractDetail resolves an id across both collections and attaches
// the contract's records.
func (h *Handler) GetContractDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.contracts.Detail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}

// AddPaymentContract creates a payment contract stamped with the caller's
// identity.
func (h *Handler) AddPaymentContract(c *gin.Context) {
	var in models.ContractInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "contractNo, name and amount are required")
		return
	}
	id, err := h.contracts.AddPayment(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

// AddReceiptContract creates a receipt contract stamped with the caller's
// identity.
func (h *Handler) AddReceiptContract(c *gin.Context) {
	var in models.ContractInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "contractNo, name and amount are required")
		return
	}
	id, err := h.contracts.AddReceipt(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

// UpdateContract overwrites a contract's caller-settable fields; the
// accumulated paid/received amount survives and the outstanding amount is
// recomputed against the new value.
func (h *Handler) UpdateContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.ContractInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "contractNo, name and amount are required")
		return
	}
	if err := h.contracts.Update(id, in, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// DeleteContract removes a contract and its records.
func (h *Handler) DeleteContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// ChangeContractStatus overwrites the status label only.
func (h *Handler) ChangeContractStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "status is required")
		return
	}
	if err := h.contracts.ChangeStatus(id, in.Status, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// AddContractRecord applies a payment or receipt record against the
// contract in the URL. The variant is picked by the kind query parameter
// and must match the contract's collection.
func (h *Handler) AddContractRecord(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.RecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "amount is required")
		return
	}
	actor := middleware.CurrentUser(c)

	var recordID int64
	var err error
	switch models.Kind(c.DefaultQuery("kind", string(models.KindPayment))) {
	case models.KindPayment:
		recordID, err = h.contracts.AddPaymentRecord(id, in, actor)
	case models.KindReceipt:
		recordID, err = h.contracts.AddReceiptRecord(id, in, actor)
	default:
		respondBadRequest(c, "kind must be payment or receipt")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": recordID})
}

// ListPaymentRecords returns a filtered page of all payment records.
func (h *Handler) ListPaymentRecords(c *gin.Context) {
	respondOK(c, h.contracts.ListPaymentRecords(listQuery(c)))
}

// ListReceiptRecords returns a filtered page of all receipt records.
func (h *Handler) ListReceiptRecords(c *gin.Context) {
	respondOK(c, h.contracts.ListReceiptRecords(listQuery(c)))
}

// ExportContracts streams the contract register of one kind as an .xlsx
// workbook, with the amount spelled out in words as on printed contract
// forms. The current filter set applies; pagination does not.
func (h *Handler) ExportContracts(c *gin.Context) {
	kind := models.Kind(c.DefaultQuery("kind", string(models.KindPayment)))
	if kind != models.KindPayment && kind != models.KindReceipt {
		respondBadRequest(c, "kind must be payment or receipt")
		return
	}

	q := listQuery(c)
	q.PageNum = 1
	q.PageSize = 1 << 20 // whole filtered set on one sheet

	f := excelize.NewFile()
	defer f.Close()
	const sheetName = "Contracts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		respondError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Contract No", "Name", "Counterparty", "Sign Date", "Status", "Amount", "Amount In Words", "Settled", "Outstanding"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	writeRow := func(row int, values []any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	if kind == models.KindPayment {
		page := h.contracts.ListPayment(q)
		for i, contract := range page.List {
			writeRow(i+2, []any{
				contract.ContractNo, contract.Name, contract.PartyB, contract.SignDate, contract.Status,
				contract.Amount, amountInWords(contract.Amount), contract.PaidAmount, contract.UnpaidAmount,
			})
		}
	} else {
		page := h.contracts.ListReceipt(q)
		for i, contract := range page.List {
			writeRow(i+2, []any{
				contract.ContractNo, contract.Name, contract.PartyA, contract.SignDate, contract.Status,
				contract.Amount, amountInWords(contract.Amount), contract.ReceivedAmount, contract.UnreceiveAmount,
			})
		}
	}

	fileName := fmt.Sprintf("%s_contracts_%s.xlsx", kind, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, Envelope{Code: http.StatusInternalServerError, Message: "failed to write workbook", Data: nil})
	}
}

// amountInWords spells out the integer part of an amount.
func amountInWords(amount float64) string {
	words := num2words.ConvertAnd(int(amount))
	return strings.ToUpper(words[:1]) + words[1:]
}

// GetStatistics returns the dashboard aggregate.
func (h *Handler) GetStatistics(c *gin.Context) {
	respondOK(c, h.statistics.Compute())
}
