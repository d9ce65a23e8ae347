package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractdesk/models"
)

func TestNextIDs(t *testing.T) {
	st := New()

	_ = st.View(func(d *Data) error {
		assert.Equal(t, int64(1), d.NextUserID(), "empty collections start at 1")
		assert.Equal(t, int64(1), d.NextPaymentContractID())
		assert.Equal(t, int64(1), d.NextAuditID())
		return nil
	})

	require.NoError(t, st.Write(func(d *Data) error {
		d.Users = append(d.Users, models.User{ID: 5}, models.User{ID: 2})
		return nil
	}))

	_ = st.View(func(d *Data) error {
		assert.Equal(t, int64(6), d.NextUserID(), "max plus one, not length plus one")
		return nil
	})

	// Deleting the highest id makes it reusable.
	require.NoError(t, st.Write(func(d *Data) error {
		d.Users = d.Users[1:]
		return nil
	}))
	_ = st.View(func(d *Data) error {
		assert.Equal(t, int64(3), d.NextUserID())
		return nil
	})
}

func TestFindUserByNameIsCaseSensitive(t *testing.T) {
	st := NewSeeded()
	_ = st.View(func(d *Data) error {
		assert.NotNil(t, d.FindUserByName("admin"))
		assert.Nil(t, d.FindUserByName("Admin"))
		assert.Nil(t, d.FindUserByName("ADMIN"))
		return nil
	})
}

func TestSeedConsistency(t *testing.T) {
	st := NewSeeded()

	_ = st.View(func(d *Data) error {
		for _, c := range d.PaymentContracts {
			assert.Equal(t, c.Amount, c.PaidAmount+c.UnpaidAmount, "contract %s", c.ContractNo)

			var recorded float64
			for _, r := range d.PaymentRecordsFor(c.ID) {
				recorded += r.Amount
			}
			assert.Equal(t, c.PaidAmount, recorded, "contract %s records", c.ContractNo)
		}
		for _, c := range d.ReceiptContracts {
			assert.Equal(t, c.Amount, c.ReceivedAmount+c.UnreceiveAmount, "contract %s", c.ContractNo)

			var recorded float64
			for _, r := range d.ReceiptRecordsFor(c.ID) {
				recorded += r.Amount
			}
			assert.Equal(t, c.ReceivedAmount, recorded, "contract %s records", c.ContractNo)
		}

		for _, u := range d.Users {
			assert.NotNil(t, d.FindDepartment(u.DepartmentID), "user %s department", u.Username)
			for _, ref := range u.Roles {
				assert.NotNil(t, d.FindRole(ref.ID), "user %s role %d", u.Username, ref.ID)
			}
		}
		return nil
	})
}

func TestDepartmentName(t *testing.T) {
	st := NewSeeded()
	_ = st.View(func(d *Data) error {
		assert.Equal(t, "Finance", d.DepartmentName(2))
		assert.Equal(t, "", d.DepartmentName(999))
		return nil
	})
}
