package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/config"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.ClientPayment{},
		&models.Staff{},
		&models.StaffPayment{},
		&models.Service{},
		&models.Product{},
		&models.Supplier{},
		&models.SupplierPayment{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.Expense{},
		&models.WorkingHours{},
		&models.AppSetting{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	applyConstraints(db)

	return db
}

// applyConstraints adds the guards AutoMigrate cannot express: an
// exclusion constraint rejecting overlapping bookings per staff member
// even across concurrent connections, and a floor on product stock.
// A duplicate-object error means the constraint survived a previous boot;
// anything else (e.g. btree_gist unavailable) is fatal, because the
// overlap backstop would otherwise silently not exist.
func applyConstraints(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}

	stmts := []string{
		`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            staff_id WITH =,
            date WITH =,
            tsrange(
                ('2000-01-01 ' || start_time)::timestamp,
                ('2000-01-01 ' || end_time)::timestamp
            ) WITH &&
        )
        WHERE (staff_id IS NOT NULL AND status <> 'cancelled')
    `,
		`
        ALTER TABLE products
        ADD CONSTRAINT products_stock_non_negative
        CHECK (stock >= 0)
    `,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil && !httperr.IsDuplicateObject(err) {
			log.Fatalf("failed to apply constraint: %v", err)
		}
	}
}
