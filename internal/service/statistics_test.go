package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractdesk/internal/store"
	"contractdesk/models"
)

func TestComputeSeeded(t *testing.T) {
	svc := NewStatisticsService(store.NewSeeded())

	stats := svc.Compute()

	assert.Equal(t, int64(3), stats.PaymentContractCount)
	assert.Equal(t, int64(3), stats.ReceiptContractCount)
	assert.Equal(t, float64(610000), stats.TotalPaymentAmount)
	assert.Equal(t, float64(220000), stats.TotalPaidAmount)
	assert.Equal(t, float64(350000), stats.TotalReceiptAmount)
	assert.Equal(t, float64(150000), stats.TotalReceivedAmount)

	// Sign dates fall in January, February and March.
	assert.Equal(t, [12]float64{50000, 200000, 360000}, stats.PaymentMonthlyData)
	assert.Equal(t, [12]float64{150000, 80000, 120000}, stats.ReceiptMonthlyData)
}

func TestComputeEmptyStore(t *testing.T) {
	svc := NewStatisticsService(store.New())

	stats := svc.Compute()

	assert.Equal(t, int64(0), stats.PaymentContractCount)
	assert.Equal(t, float64(0), stats.TotalPaymentAmount)
	assert.Equal(t, [12]float64{}, stats.PaymentMonthlyData)
}

func TestComputeBucketsBySignMonth(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Write(func(d *store.Data) error {
		d.PaymentContracts = []models.PaymentContract{
			{ContractBase: models.ContractBase{ID: 1, SignDate: "2023-06-01", Amount: 100}, PaidAmount: 40},
			{ContractBase: models.ContractBase{ID: 2, SignDate: "2023-06-30", Amount: 200}},
			{ContractBase: models.ContractBase{ID: 3, SignDate: "2023-12-31", Amount: 300}},
			{ContractBase: models.ContractBase{ID: 4, SignDate: "not a date", Amount: 400}},
			{ContractBase: models.ContractBase{ID: 5, SignDate: "", Amount: 500}},
		}
		return nil
	}))
	svc := NewStatisticsService(st)

	stats := svc.Compute()

	assert.Equal(t, float64(300), stats.PaymentMonthlyData[5], "same-month contracts accumulate")
	assert.Equal(t, float64(300), stats.PaymentMonthlyData[11])
	assert.Equal(t, float64(1500), stats.TotalPaymentAmount, "unparsable sign dates still count toward the totals")
	assert.Equal(t, float64(40), stats.TotalPaidAmount)

	var monthSum float64
	for _, v := range stats.PaymentMonthlyData {
		monthSum += v
	}
	assert.Equal(t, float64(600), monthSum, "unparsable sign dates are skipped in the monthly series")
}

func TestComputeReflectsMutations(t *testing.T) {
	st := store.NewSeeded()
	contracts := NewContractService(st, nil, testClock)
	svc := NewStatisticsService(st)

	before := svc.Compute()
	_, err := contracts.AddPaymentRecord(1, models.RecordInput{Amount: 5000}, testActor)
	require.NoError(t, err)
	after := svc.Compute()

	assert.Equal(t, before.TotalPaidAmount+5000, after.TotalPaidAmount)
	assert.Equal(t, before.TotalPaymentAmount, after.TotalPaymentAmount)
}
