package appointment

import (
	"context"

	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) ByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return uc.repo.ListForPeriod(ctx, date, date)
}

func (uc *List) ByRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {
	return uc.repo.ListForPeriod(ctx, from, to)
}
