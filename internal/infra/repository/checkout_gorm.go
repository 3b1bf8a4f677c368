package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apdomain "github.com/salonops/salon-manager/internal/domain/appointment"
	domain "github.com/salonops/salon-manager/internal/domain/checkout"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

func (r *CheckoutGormRepository) ClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *CheckoutGormRepository) StaffByID(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *CheckoutGormRepository) AppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// PostSale writes the whole sale in one transaction: header, items, stock
// decrements, commission accrual, client ledger entries, credit balance
// delta, loyalty award and the optional visit settlement. Any failure
// rolls back everything.
func (r *CheckoutGormRepository) PostSale(
	ctx context.Context,
	sale *models.Transaction,
	items []models.TransactionItem,
	eff domain.Effects,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].TransactionID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		for _, dec := range eff.Stock {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", dec.ProductID, dec.Qty).
				Update("stock", gorm.Expr("stock - ?", dec.Qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("insufficient_stock")
			}
		}

		if eff.Commission != nil {
			eff.Commission.ReferenceID = &sale.ID
			if err := tx.Create(eff.Commission).Error; err != nil {
				return err
			}
		}

		for i := range eff.ClientEntries {
			eff.ClientEntries[i].ReferenceID = &sale.ID
		}
		if len(eff.ClientEntries) > 0 {
			if err := tx.Create(&eff.ClientEntries).Error; err != nil {
				return err
			}
		}

		if !eff.CreditDelta.Equal(decimal.Zero) {
			if err := tx.Model(&models.Client{}).
				Where("id = ?", *sale.ClientID).
				Update("credit_balance", gorm.Expr("credit_balance + ?", eff.CreditDelta)).
				Error; err != nil {
				return err
			}
		}

		if eff.Award != nil {
			if err := applyClientAward(tx, eff.Award.ClientID, eff.Award.Spend, eff.Award.Points); err != nil {
				return err
			}
		}

		if eff.SettleAppointmentID != nil {
			now := time.Now()
			if err := tx.Model(&models.Appointment{}).
				Where("id = ?", *eff.SettleAppointmentID).
				Updates(map[string]any{
					"status":                 string(apdomain.StatusCompleted),
					"completed_at":           now,
					"settled_transaction_id": sale.ID,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if httperr.IsCheckViolation(err) {
		return httperr.ErrBusiness("insufficient_stock")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*CheckoutGormRepository)(nil)
