package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/salonops/salon-manager/internal/domain/purchasing"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type PurchasingGormRepository struct {
	db *gorm.DB
}

func NewPurchasingGormRepository(db *gorm.DB) *PurchasingGormRepository {
	return &PurchasingGormRepository{db: db}
}

func (r *PurchasingGormRepository) SupplierByID(
	ctx context.Context,
	id uint,
) (*models.Supplier, error) {

	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *PurchasingGormRepository) ProductByID(
	ctx context.Context,
	id uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PurchasingGormRepository) PostPurchase(
	ctx context.Context,
	order *models.PurchaseOrder,
	lines []domain.Line,
	payment *models.SupplierPayment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			productID := line.ProductID

			if line.NewProduct() {
				product := models.Product{
					NameAr:        line.NameAr,
					NameFr:        line.NameFr,
					Category:      line.Category,
					Price:         domain.RetailPrice(line.UnitPrice),
					PurchasePrice: line.UnitPrice,
					Stock:         line.Quantity,
					SupplierID:    &order.SupplierID,
					IsActive:      true,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				productID = product.ID
			} else {
				res := tx.Model(&models.Product{}).
					Where("id = ?", productID).
					Updates(map[string]any{
						"stock":          gorm.Expr("stock + ?", line.Quantity),
						"purchase_price": line.UnitPrice,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return httperr.ErrBusiness("product_not_found")
				}
			}

			item := models.PurchaseOrderItem{
				PurchaseOrderID: order.ID,
				ProductID:       productID,
				Quantity:        line.Quantity,
				UnitPrice:       line.UnitPrice,
				Total:           line.Total(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		// Full debt is always recorded first; a payment claws it back.
		if err := tx.Model(&models.Supplier{}).
			Where("id = ?", order.SupplierID).
			Update("balance", gorm.Expr("balance + ?", order.Total)).
			Error; err != nil {
			return err
		}

		if payment != nil {
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Supplier{}).
				Where("id = ?", payment.SupplierID).
				Update("balance", gorm.Expr("balance - ?", payment.Amount)).
				Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PurchasingGormRepository) PostPayment(
	ctx context.Context,
	payment *models.SupplierPayment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Supplier{}).
			Where("id = ?", payment.SupplierID).
			Update("balance", gorm.Expr("balance - ?", payment.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("supplier_not_found")
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*PurchasingGormRepository)(nil)
