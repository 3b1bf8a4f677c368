package purchasing

import (
	"context"

	"github.com/salonops/salon-manager/internal/models"
)

type Repository interface {
	SupplierByID(ctx context.Context, id uint) (*models.Supplier, error)
	ProductByID(ctx context.Context, id uint) (*models.Product, error)

	// PostPurchase atomically creates the order header, creates or
	// restocks the product behind each line, writes the order items,
	// raises the supplier balance by the order total and, when payment
	// is non-nil, records it and lowers the balance again.
	PostPurchase(
		ctx context.Context,
		order *models.PurchaseOrder,
		lines []Line,
		payment *models.SupplierPayment,
	) error

	// PostPayment records a standalone debt repayment and decrements the
	// supplier balance atomically.
	PostPayment(ctx context.Context, payment *models.SupplierPayment) error
}
