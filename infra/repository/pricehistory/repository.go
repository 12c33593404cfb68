package pricehistory

import (
	"context"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/pricehistory"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type priceHistoryRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed price history repository.
func New(db *gorm.DB) repo.Repository {
	return &priceHistoryRepository{db: db}
}

func (r *priceHistoryRepository) Upsert(ctx context.Context, points []portfolio.PricePoint) error {
	if len(points) == 0 {
		return nil
	}
	rows := make([]PriceHistory, 0, len(points))
	for _, p := range points {
		rows = append(rows, PriceHistory{
			Ticker: domain.NormalizeTicker(p.Ticker),
			Date:   domain.Day(p.Date),
			Close:  p.Close,
		})
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticker"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"close"}),
		}).CreateInBatches(rows, 200).Error
	})
}

func (r *priceHistoryRepository) List(ctx context.Context, tickers []string, since time.Time) ([]portfolio.PricePoint, error) {
	if len(tickers) == 0 {
		return nil, nil
	}
	upper := make([]string, 0, len(tickers))
	for _, t := range tickers {
		upper = append(upper, strings.ToUpper(t))
	}
	var rows []PriceHistory
	err := r.db.WithContext(ctx).
		Where("ticker IN ? AND date >= ?", upper, domain.Day(since)).
		Order("date").Order("ticker").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]portfolio.PricePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, portfolio.PricePoint{Ticker: row.Ticker, Date: row.Date.UTC(), Close: row.Close})
	}
	return out, nil
}
