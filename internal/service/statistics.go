package service

import (
	"time"

	"contractdesk/internal/store"
	"contractdesk/models"
)

const signDateLayout = "2006-01-02"

// StatisticsService derives the dashboard aggregate. Nothing is cached:
// every call scans both contract collections once, which is fine for an
// in-memory dataset.
type StatisticsService struct {
	store *store.Store
	opts  options
}

func NewStatisticsService(st *store.Store, opts ...Option) *StatisticsService {
	return &StatisticsService{store: st, opts: newOptions(opts)}
}

// Compute returns counts, total value and total paid/received per contract
// kind, plus monthly contract-value series bucketed by sign date. Sign
// dates are interpreted in UTC so the buckets do not depend on the host
// timezone; unparsable dates are skipped.
func (s *StatisticsService) Compute() models.Statistics {
	s.opts.pause()
	var stats models.Statistics
	_ = s.store.View(func(d *store.Data) error {
		stats.PaymentContractCount = int64(len(d.PaymentContracts))
		stats.ReceiptContractCount = int64(len(d.ReceiptContracts))
		for _, c := range d.PaymentContracts {
			stats.TotalPaymentAmount += c.Amount
			stats.TotalPaidAmount += c.PaidAmount
			if m, ok := signMonth(c.SignDate); ok {
				stats.PaymentMonthlyData[m] += c.Amount
			}
		}
		for _, c := range d.ReceiptContracts {
			stats.TotalReceiptAmount += c.Amount
			stats.TotalReceivedAmount += c.ReceivedAmount
			if m, ok := signMonth(c.SignDate); ok {
				stats.ReceiptMonthlyData[m] += c.Amount
			}
		}
		return nil
	})
	return stats
}

// signMonth maps a sign date to its zero-based calendar month.
func signMonth(signDate string) (int, bool) {
	t, err := time.ParseInLocation(signDateLayout, signDate, time.UTC)
	if err != nil {
		return 0, false
	}
	return int(t.Month()) - 1, true
}
