package routes

import (
	"github.com/gin-gonic/gin"

	"contractdesk/internal/handlers"
)

// RegisterAPIRoutes registers every route that requires an authenticated
// session.
func RegisterAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	apiGroup := api.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/logout", h.Logout)
			auth.GET("/userinfo", h.UserInfo)
		}

		contracts := apiGroup.Group("/contracts")
		{
			contracts.GET("/payment", h.ListPaymentContracts)
			contracts.POST("/payment", h.AddPaymentContract)
			contracts.GET("/receipt", h.ListReceiptContracts)
			contracts.POST("/receipt", h.AddReceiptContract)
			contracts.GET("/export", h.ExportContracts)
			contracts.GET("/:id", h.GetContractDetail)
			contracts.PUT("/:id", h.UpdateContract)
			contracts.DELETE("/:id", h.DeleteContract)
			contracts.PUT("/:id/status", h.ChangeContractStatus)
			contracts.POST("/:id/records", h.AddContractRecord)
		}

		apiGroup.GET("/payments", h.ListPaymentRecords)
		apiGroup.GET("/receipts", h.ListReceiptRecords)
		apiGroup.GET("/statistics", h.GetStatistics)

		users := apiGroup.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
			users.PUT("/:id/status", h.UpdateUserStatus)
			users.POST("/:id/reset-password", h.ResetPassword)
		}

		departments := apiGroup.Group("/departments")
		{
			departments.GET("", h.ListDepartments)
			departments.POST("", h.CreateDepartment)
			departments.PUT("/:id", h.UpdateDepartment)
			departments.DELETE("/:id", h.DeleteDepartment)
		}

		roles := apiGroup.Group("/roles")
		{
			roles.GET("", h.ListRoles)
			roles.POST("", h.CreateRole)
			roles.PUT("/:id", h.UpdateRole)
			roles.DELETE("/:id", h.DeleteRole)
		}

		apiGroup.GET("/permissions", h.ListPermissions)
		apiGroup.GET("/config", h.GetSystemConfig)
		apiGroup.PUT("/config", h.UpdateSystemConfig)
		apiGroup.GET("/logs", h.ListSystemLogs)
	}
}
