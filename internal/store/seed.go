package store

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"contractdesk/models"
)

const defaultAvatar = "/static/avatars/default.png"

// seedData builds the demo dataset. Contract financials are consistent with
// their records: the sum of a contract's record amounts equals its
// paid/received amount, and paid+unpaid always equals the contract value.
func seedData() Data {
	d := Data{
		Users: []models.User{
			{
				ID: 1, Username: "admin", Name: "System Administrator",
				Password: hash("123456"), Email: "admin@example.com", Phone: "13800138000",
				Avatar: defaultAvatar, DepartmentID: 1, Status: models.StatusActive,
				CreateTime: "2023-01-01 00:00:00",
				Roles:      []models.RoleRef{{ID: 1, Name: "System Administrator", Code: "admin"}},
			},
			{
				ID: 2, Username: "user", Name: "Regular Employee",
				Password: hash("123456"), Email: "user@example.com", Phone: "13900139000",
				Avatar: defaultAvatar, DepartmentID: 2, Status: models.StatusActive,
				CreateTime: "2023-01-02 00:00:00",
				Roles:      []models.RoleRef{{ID: 4, Name: "Employee", Code: "user"}},
			},
			{
				ID: 3, Username: "finance", Name: "Finance Officer",
				Password: hash("123456"), Email: "finance@example.com", Phone: "13700137000",
				Avatar: defaultAvatar, DepartmentID: 2, Status: models.StatusActive,
				CreateTime: "2023-01-03 00:00:00",
				Roles:      []models.RoleRef{{ID: 3, Name: "Finance Officer", Code: "finance"}},
			},
		},

		Departments: []models.Department{
			{ID: 1, Name: "Executive Office", Code: "CEO", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
			{ID: 2, Name: "Finance", Code: "FIN", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
			{ID: 3, Name: "Human Resources", Code: "HR", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
			{ID: 4, Name: "Technology", Code: "TECH", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
			{ID: 5, Name: "Sales", Code: "SALES", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
			{ID: 6, Name: "Procurement", Code: "PURCHASE", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00"},
		},

		Roles: []models.Role{
			{ID: 1, Name: "System Administrator", Code: "admin", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00",
				Permissions: []string{"*"}},
			{ID: 2, Name: "Department Manager", Code: "manager", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00",
				Permissions: []string{"contract:view", "contract:add", "contract:edit", "contract:approve"}},
			{ID: 3, Name: "Finance Officer", Code: "finance", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00",
				Permissions: []string{"contract:view", "payment:view", "payment:add", "receipt:view", "receipt:add"}},
			{ID: 4, Name: "Employee", Code: "user", Status: models.StatusActive, CreateTime: "2023-01-01 00:00:00",
				Permissions: []string{"contract:view"}},
		},

		PaymentContracts: []models.PaymentContract{
			{
				ContractBase: models.ContractBase{
					ID: 1, ContractNo: "PC-2023-001", Name: "Office Equipment Purchase",
					Type: "purchase", PartyA: "Our Company", PartyB: "Supplier A",
					SignDate: "2023-01-15", StartDate: "2023-01-20", EndDate: "2023-12-31",
					Amount: 50000, Status: models.ContractStatusExecuting,
					ContractType: models.KindPayment, DepartmentID: 6, Department: "Procurement",
					CreateUserID: 1, CreateUserName: "System Administrator", CreateTime: "2023-01-10 10:00:00",
				},
				PaidAmount: 30000, UnpaidAmount: 20000,
			},
			{
				ContractBase: models.ContractBase{
					ID: 2, ContractNo: "PC-2023-002", Name: "Software Development Services",
					Type: "service", PartyA: "Our Company", PartyB: "Software Vendor B",
					SignDate: "2023-02-10", StartDate: "2023-02-15", EndDate: "2023-08-15",
					Amount: 200000, Status: models.ContractStatusExecuting,
					ContractType: models.KindPayment, DepartmentID: 4, Department: "Technology",
					CreateUserID: 2, CreateUserName: "Regular Employee", CreateTime: "2023-02-05 14:30:00",
				},
				PaidAmount: 100000, UnpaidAmount: 100000,
			},
			{
				ContractBase: models.ContractBase{
					ID: 3, ContractNo: "PC-2023-003", Name: "Office Space Lease",
					Type: "lease", PartyA: "Our Company", PartyB: "Realty C",
					SignDate: "2023-03-01", StartDate: "2023-04-01", EndDate: "2024-03-31",
					Amount: 360000, Status: models.ContractStatusExecuting,
					ContractType: models.KindPayment, DepartmentID: 3, Department: "Human Resources",
					CreateUserID: 1, CreateUserName: "System Administrator", CreateTime: "2023-02-25 09:15:00",
				},
				PaidAmount: 90000, UnpaidAmount: 270000,
			},
		},

		ReceiptContracts: []models.ReceiptContract{
			{
				ContractBase: models.ContractBase{
					ID: 101, ContractNo: "RC-2023-001", Name: "Product Sales Agreement",
					Type: "sales", PartyA: "Customer A", PartyB: "Our Company",
					SignDate: "2023-01-20", StartDate: "2023-01-25", EndDate: "2023-12-31",
					Amount: 150000, Status: models.ContractStatusExecuting,
					ContractType: models.KindReceipt, DepartmentID: 5, Department: "Sales",
					CreateUserID: 3, CreateUserName: "Finance Officer", CreateTime: "2023-01-18 11:20:00",
				},
				ReceivedAmount: 50000, UnreceiveAmount: 100000,
			},
			{
				ContractBase: models.ContractBase{
					ID: 102, ContractNo: "RC-2023-002", Name: "Technical Support Services",
					Type: "service", PartyA: "Customer B", PartyB: "Our Company",
					SignDate: "2023-02-15", StartDate: "2023-03-01", EndDate: "2023-08-31",
					Amount: 80000, Status: models.ContractStatusExecuting,
					ContractType: models.KindReceipt, DepartmentID: 4, Department: "Technology",
					CreateUserID: 3, CreateUserName: "Finance Officer", CreateTime: "2023-02-10 16:45:00",
				},
				ReceivedAmount: 40000, UnreceiveAmount: 40000,
			},
			{
				ContractBase: models.ContractBase{
					ID: 103, ContractNo: "RC-2023-003", Name: "Consulting Engagement",
					Type: "consulting", PartyA: "Customer C", PartyB: "Our Company",
					SignDate: "2023-03-10", StartDate: "2023-03-15", EndDate: "2023-09-15",
					Amount: 120000, Status: models.ContractStatusExecuting,
					ContractType: models.KindReceipt, DepartmentID: 5, Department: "Sales",
					CreateUserID: 3, CreateUserName: "Finance Officer", CreateTime: "2023-03-05 10:30:00",
				},
				ReceivedAmount: 60000, UnreceiveAmount: 60000,
			},
		},

		Payments: []models.PaymentRecord{
			{ID: 1, ContractID: 1, ContractName: "Office Equipment Purchase", PaymentNo: "PAY-PC-2023-001-1",
				PaymentDate: "2023-02-16", Amount: 20000, PaymentMethod: "bank transfer",
				PaymentAccount: "622848******1234", ReceiverAccount: "622848******5678",
				Remark: "first installment", CreateUserID: 1, CreateUserName: "System Administrator",
				CreateTime: "2023-02-16 14:30:00"},
			{ID: 2, ContractID: 1, ContractName: "Office Equipment Purchase", PaymentNo: "PAY-PC-2023-001-2",
				PaymentDate: "2023-05-17", Amount: 10000, PaymentMethod: "bank transfer",
				PaymentAccount: "622848******1234", ReceiverAccount: "622848******5678",
				Remark: "second installment", CreateUserID: 1, CreateUserName: "System Administrator",
				CreateTime: "2023-05-17 15:20:00"},
			{ID: 3, ContractID: 2, ContractName: "Software Development Services", PaymentNo: "PAY-PC-2023-002-1",
				PaymentDate: "2023-03-16", Amount: 60000, PaymentMethod: "bank transfer",
				PaymentAccount: "622848******1234", ReceiverAccount: "622848******9012",
				Remark: "first installment", CreateUserID: 2, CreateUserName: "Regular Employee",
				CreateTime: "2023-03-16 10:15:00"},
			{ID: 4, ContractID: 2, ContractName: "Software Development Services", PaymentNo: "PAY-PC-2023-002-2",
				PaymentDate: "2023-05-17", Amount: 40000, PaymentMethod: "bank transfer",
				PaymentAccount: "622848******1234", ReceiverAccount: "622848******9012",
				Remark: "second installment", CreateUserID: 2, CreateUserName: "Regular Employee",
				CreateTime: "2023-05-17 11:30:00"},
			{ID: 5, ContractID: 3, ContractName: "Office Space Lease", PaymentNo: "PAY-PC-2023-003-1",
				PaymentDate: "2023-04-01", Amount: 90000, PaymentMethod: "bank transfer",
				PaymentAccount: "622848******1234", ReceiverAccount: "622848******3456",
				Remark: "first quarter rent", CreateUserID: 1, CreateUserName: "System Administrator",
				CreateTime: "2023-04-01 09:45:00"},
		},

		Receipts: []models.ReceiptRecord{
			{ID: 1, ContractID: 101, ContractName: "Product Sales Agreement", ReceiptNo: "REC-RC-2023-001-1",
				ReceiptDate: "2023-02-26", Amount: 50000, ReceiptMethod: "bank transfer",
				ReceiptAccount: "622848******1234", PayerAccount: "622848******7890",
				Remark: "first installment", CreateUserID: 3, CreateUserName: "Finance Officer",
				CreateTime: "2023-02-26 16:20:00"},
			{ID: 2, ContractID: 102, ContractName: "Technical Support Services", ReceiptNo: "REC-RC-2023-002-1",
				ReceiptDate: "2023-03-16", Amount: 40000, ReceiptMethod: "bank transfer",
				ReceiptAccount: "622848******1234", PayerAccount: "622848******4321",
				Remark: "first installment", CreateUserID: 3, CreateUserName: "Finance Officer",
				CreateTime: "2023-03-16 14:50:00"},
			{ID: 3, ContractID: 103, ContractName: "Consulting Engagement", ReceiptNo: "REC-RC-2023-003-1",
				ReceiptDate: "2023-03-21", Amount: 60000, ReceiptMethod: "bank transfer",
				ReceiptAccount: "622848******1234", PayerAccount: "622848******8765",
				Remark: "first installment", CreateUserID: 3, CreateUserName: "Finance Officer",
				CreateTime: "2023-03-21 11:10:00"},
		},
	}

	d.Config = defaultConfig()
	return d
}

func defaultConfig() models.SystemConfig {
	cfg := models.SystemConfig{
		SiteName: "Contract Lifecycle Management",
		Logo:     "/logo.png",
		Footer:   "© 2023 Contract Lifecycle Management",
	}
	cfg.Theme.PrimaryColor = "#409EFF"
	cfg.Theme.MenuTheme = "dark"
	cfg.Security.PasswordExpireDays = 90
	cfg.Security.LoginRetryLimit = 5
	cfg.Security.LockTime = 30
	cfg.Upload.MaxSize = 10
	cfg.Upload.AllowTypes = ".jpg,.png,.pdf,.doc,.docx,.xls,.xlsx"
	return cfg
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		slog.Error("Failed to hash seed password", "error", err)
		return ""
	}
	return string(h)
}
