package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salonops/salon-manager/internal/domain/loyalty"
	"github.com/salonops/salon-manager/internal/models"
)

// applyClientAward locks the client row, bumps the visit statistics with
// store-side relative increments and recomputes the tier on the
// post-update spend. Must run inside the caller's transaction.
func applyClientAward(
	tx *gorm.DB,
	clientID uint,
	spend decimal.Decimal,
	points int,
) error {

	var client models.Client
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&client, clientID).Error; err != nil {
		return err
	}

	newTotal := client.TotalSpent.Add(spend)

	return tx.Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"total_spent":    gorm.Expr("total_spent + ?", spend),
			"loyalty_points": gorm.Expr("loyalty_points + ?", points),
			"visit_count":    gorm.Expr("visit_count + 1"),
			"last_visit":     time.Now(),
			"tier":           string(loyalty.TierFor(newTotal)),
		}).Error
}
