package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_dashboard/internal/models"
	"github.com/SscSPs/fx_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// ListRates retrieves the stored rates for a base and symbols in [start, end], ordered by date.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, base string, symbols []string, start, end time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, rate_date, base_currency, target_currency, rate, created_at
		FROM exchange_rates
		WHERE base_currency = $1
			AND target_currency = ANY($2)
			AND rate_date BETWEEN $3 AND $4
		ORDER BY rate_date, target_currency;
	`

	rows, err := r.Pool.Query(ctx, query, base, symbols, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		err := rows.Scan(
			&modelRate.ExchangeRateID, &modelRate.RateDate, &modelRate.BaseCurrency,
			&modelRate.TargetCurrency, &modelRate.Rate, &modelRate.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(modelRate))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	return rates, nil
}

// UpsertRates writes all rates in one transaction. An existing row for the
// same (rate_date, base_currency, target_currency) keeps its id and gets the new rate.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, rate_date, base_currency, target_currency, rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (rate_date, base_currency, target_currency) DO UPDATE SET
			rate = EXCLUDED.rate;
	`

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		batch.Queue(query, m.ExchangeRateID, m.RateDate, m.BaseCurrency, m.TargetCurrency, m.Rate, m.CreatedAt)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to upsert exchange rates", err)
	}

	return r.Commit(ctx, tx)
}
