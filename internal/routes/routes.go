package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/audit"
	"github.com/salonops/salon-manager/internal/cache"
	"github.com/salonops/salon-manager/internal/config"
	"github.com/salonops/salon-manager/internal/handlers"
	infraRepo "github.com/salonops/salon-manager/internal/infra/repository"
	"github.com/salonops/salon-manager/internal/middleware"
	ucAppointment "github.com/salonops/salon-manager/internal/usecase/appointment"
	ucCheckout "github.com/salonops/salon-manager/internal/usecase/checkout"
	ucPurchasing "github.com/salonops/salon-manager/internal/usecase/purchasing"
	"github.com/salonops/salon-manager/internal/webhook"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	scheduleCache *cache.ScheduleCache,
	notifier *webhook.Notifier,
) *audit.Dispatcher {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, scheduleCache)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(db)
	purchasingRepo := infraRepo.NewPurchasingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES / APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreate(appointmentRepo, auditDispatcher)
	rescheduleUC := ucAppointment.NewReschedule(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewComplete(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDelete(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewList(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// USE CASES / CHECKOUT & PURCHASING
	// ======================================================
	postSaleUC := ucCheckout.NewPostSale(checkoutRepo, auditDispatcher)
	postPurchaseUC := ucPurchasing.NewPostPurchase(purchasingRepo, auditDispatcher)
	paySupplierUC := ucPurchasing.NewPaySupplier(purchasingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleUC,
		completeUC,
		updateStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
	)
	checkoutHandler := handlers.NewCheckoutHandler(db, postSaleUC)
	purchasingHandler := handlers.NewPurchasingHandler(db, postPurchaseUC, paySupplierUC)

	clientHandler := handlers.NewClientHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	supplierHandler := handlers.NewSupplierHandler(db)
	expenseHandler := handlers.NewExpenseHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, scheduleCache)
	settingsHandler := handlers.NewSettingsHandler(db)
	reportsHandler := handlers.NewReportsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createAppointmentUC, notifier)
	webhookHandler := handlers.NewWebhookHandler(auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.Services)
			publicAPI.GET("/staff", publicHandler.Staff)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.Book)
		}

		api.POST("/webhook/messages", webhookHandler.Receive)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/range", appointmentHandler.ListByRange)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.MarkNoShow)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// POS
			// ------------------------------
			secured.POST("/sales", checkoutHandler.PostSale)
			secured.GET("/sales", checkoutHandler.List)
			secured.GET("/sales/:id", checkoutHandler.Get)

			// ------------------------------
			// PURCHASING
			// ------------------------------
			secured.POST("/purchases", purchasingHandler.PostPurchase)
			secured.GET("/purchases", purchasingHandler.ListOrders)
			secured.POST("/suppliers/:id/payments", purchasingHandler.PaySupplier)
			secured.GET("/suppliers/:id/payments", purchasingHandler.ListPayments)

			// ------------------------------
			// CATALOG & PEOPLE
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.GET("/clients/:id/ledger", clientHandler.Ledger)
			secured.POST("/clients/:id/payments", clientHandler.RecordPayment)

			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.PATCH("/staff/:id", staffHandler.Update)
			secured.GET("/staff/:id/payments", staffHandler.Payments)
			secured.POST("/staff/:id/payments", staffHandler.RecordPayment)
			secured.GET("/staff/:id/balance", staffHandler.Balance)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Deactivate)

			secured.GET("/products", productHandler.List)
			secured.GET("/products/low-stock", productHandler.LowStock)
			secured.POST("/products", productHandler.Create)
			secured.GET("/products/:id", productHandler.Get)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.POST("/products/:id/stock", productHandler.AdjustStock)

			secured.GET("/suppliers", supplierHandler.List)
			secured.POST("/suppliers", supplierHandler.Create)
			secured.GET("/suppliers/:id", supplierHandler.Get)
			secured.PATCH("/suppliers/:id", supplierHandler.Update)
			secured.GET("/suppliers/:id/orders", supplierHandler.Orders)

			secured.GET("/expenses", expenseHandler.List)
			secured.POST("/expenses", expenseHandler.Create)
			secured.DELETE("/expenses/:id", expenseHandler.Delete)

			// ------------------------------
			// SETTINGS & REPORTS
			// ------------------------------
			secured.GET("/settings", settingsHandler.List)
			secured.PUT("/settings/working-hours", workingHoursHandler.Replace)
			secured.GET("/settings/working-hours", workingHoursHandler.Get)
			secured.PUT("/settings/:key", settingsHandler.Upsert)

			secured.GET("/reports/revenue", reportsHandler.Revenue)
			secured.GET("/reports/services", reportsHandler.ServiceDistribution)
			secured.GET("/reports/staff", reportsHandler.StaffReport)
			secured.GET("/reports/inventory", reportsHandler.Inventory)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
