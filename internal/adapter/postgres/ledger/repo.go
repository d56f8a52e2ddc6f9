// Package ledger implements the per-day nutrient ledger repository using
// PostgreSQL.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

const table = "nutrient_ledgers"

var ledgerColumns = []string{
	"id", "user_id", "record_date", "track_id",
	"carb", "protein", "fat", "calorie",
	"goal_calorie", "burned_calorie", "water", "caffeine", "alcohol", "cheat_count", "weight",
	"created_at", "updated_at",
}

type ledgerRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	RecordDate    time.Time  `db:"record_date"`
	TrackID       *uuid.UUID `db:"track_id"`
	Carb          float64    `db:"carb"`
	Protein       float64    `db:"protein"`
	Fat           float64    `db:"fat"`
	Calorie       float64    `db:"calorie"`
	GoalCalorie   float64    `db:"goal_calorie"`
	BurnedCalorie float64    `db:"burned_calorie"`
	Water         int        `db:"water"`
	Caffeine      int        `db:"caffeine"`
	Alcohol       int        `db:"alcohol"`
	CheatCount    int        `db:"cheat_count"`
	Weight        *float64   `db:"weight"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByKey returns the ledger of a user for a day.
// Returns domain.ErrLedgerNotFound if no ledger was opened for that day.
func (r *Repo) GetByKey(ctx context.Context, key domain.LedgerKey) (*domain.NutrientLedger, error) {
	query, args, err := postgres.Builder.
		Select(ledgerColumns...).
		From(table).
		Where(keyEq(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger query: %w", err)
	}

	var row ledgerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrLedgerNotFound, "ledger", keyString(key))
	}

	return toDomain(row), nil
}

// ListRange returns a user's ledgers with from <= date <= to, oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutrientLedger, error) {
	query, args, err := postgres.Builder.
		Select(ledgerColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"record_date": domain.DayOf(from)}).
		Where(squirrel.LtOrEq{"record_date": domain.DayOf(to)}).
		OrderBy("record_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger range query: %w", err)
	}

	var rows []ledgerRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}

	ledgers := make([]domain.NutrientLedger, len(rows))
	for i, row := range rows {
		ledgers[i] = *toDomain(row)
	}
	return ledgers, nil
}

const findDriftSQL = `
SELECT l.user_id, l.record_date,
       l.carb, l.protein, l.fat, l.calorie,
       COALESCE(SUM(d.carb), 0)    AS dish_carb,
       COALESCE(SUM(d.protein), 0) AS dish_protein,
       COALESCE(SUM(d.fat), 0)     AS dish_fat,
       COALESCE(SUM(d.calorie), 0) AS dish_calorie
FROM nutrient_ledgers l
LEFT JOIN dishes d ON d.user_id = l.user_id AND d.record_date = l.record_date
WHERE l.record_date BETWEEN $1 AND $2
GROUP BY l.id
HAVING abs(l.carb - COALESCE(SUM(d.carb), 0)) > $3
    OR abs(l.protein - COALESCE(SUM(d.protein), 0)) > $3
    OR abs(l.fat - COALESCE(SUM(d.fat), 0)) > $3
    OR abs(l.calorie - COALESCE(SUM(d.calorie), 0)) > $3
ORDER BY l.record_date, l.user_id`

type driftRow struct {
	UserID      uuid.UUID `db:"user_id"`
	RecordDate  time.Time `db:"record_date"`
	Carb        float64   `db:"carb"`
	Protein     float64   `db:"protein"`
	Fat         float64   `db:"fat"`
	Calorie     float64   `db:"calorie"`
	DishCarb    float64   `db:"dish_carb"`
	DishProtein float64   `db:"dish_protein"`
	DishFat     float64   `db:"dish_fat"`
	DishCalorie float64   `db:"dish_calorie"`
}

// FindDrift returns every ledger in [from, to] whose totals differ from the
// sum of its dishes by more than tolerance.
func (r *Repo) FindDrift(ctx context.Context, from, to time.Time, tolerance float64) ([]domain.LedgerDrift, error) {
	var rows []driftRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, findDriftSQL,
		domain.DayOf(from), domain.DayOf(to), tolerance)
	if err != nil {
		return nil, fmt.Errorf("find ledger drift: %w", err)
	}

	drifts := make([]domain.LedgerDrift, len(rows))
	for i, row := range rows {
		drifts[i] = domain.LedgerDrift{
			Key:      domain.LedgerKey{UserID: row.UserID, Date: row.RecordDate},
			Ledger:   domain.Nutrients{Carb: row.Carb, Protein: row.Protein, Fat: row.Fat, Calorie: row.Calorie},
			Recorded: domain.Nutrients{Carb: row.DishCarb, Protein: row.DishProtein, Fat: row.DishFat, Calorie: row.DishCalorie},
		}
	}
	return drifts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Open inserts a ledger for the day unless one exists, and returns the
// stored row. created reports whether this call inserted it.
func (r *Repo) Open(ctx context.Context, l *domain.NutrientLedger) (_ *domain.NutrientLedger, created bool, err error) {
	now := time.Now().UTC()

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "record_date", "track_id", "goal_calorie", "created_at", "updated_at").
		Values(l.ID, l.UserID, domain.DayOf(l.Date), l.TrackID, l.GoalCalorie, now, now).
		Suffix("ON CONFLICT (user_id, record_date) DO NOTHING RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build ledger insert: %w", err)
	}

	var row ledgerRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if err == nil {
		return toDomain(row), true, nil
	}

	mapped := postgres.MapError(err, domain.ErrLedgerNotFound, "ledger", keyString(l.Key()))
	if !errors.Is(mapped, domain.ErrLedgerNotFound) {
		return nil, false, mapped
	}

	existing, err := r.GetByKey(ctx, domain.NewLedgerKey(l.UserID, l.Date))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// ApplyDelta adds a signed nutrient delta to the running totals. The
// totals are NUMERIC, so a delta followed by its negation restores them
// exactly. Returns domain.ErrLedgerNotFound if the ledger does not exist.
func (r *Repo) ApplyDelta(ctx context.Context, key domain.LedgerKey, delta domain.Nutrients) (*domain.NutrientLedger, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("carb", squirrel.Expr("carb + ?", domain.Exact(delta.Carb))).
		Set("protein", squirrel.Expr("protein + ?", domain.Exact(delta.Protein))).
		Set("fat", squirrel.Expr("fat + ?", domain.Exact(delta.Fat))).
		Set("calorie", squirrel.Expr("calorie + ?", domain.Exact(delta.Calorie))).
		Set("updated_at", time.Now().UTC()).
		Where(keyEq(key)).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger delta: %w", err)
	}

	var row ledgerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrLedgerNotFound, "ledger", keyString(key))
	}

	return toDomain(row), nil
}

// UpdateBody writes the non-nil fields of a body log.
func (r *Repo) UpdateBody(ctx context.Context, key domain.LedgerKey, body domain.BodyLog) (*domain.NutrientLedger, error) {
	if body.IsEmpty() {
		return r.GetByKey(ctx, key)
	}

	b := postgres.Builder.Update(table).Set("updated_at", time.Now().UTC())
	if body.Weight != nil {
		b = b.Set("weight", *body.Weight)
	}
	if body.Water != nil {
		b = b.Set("water", *body.Water)
	}
	if body.Caffeine != nil {
		b = b.Set("caffeine", *body.Caffeine)
	}
	if body.Alcohol != nil {
		b = b.Set("alcohol", *body.Alcohol)
	}
	if body.CheatCount != nil {
		b = b.Set("cheat_count", *body.CheatCount)
	}
	if body.BurnedCalorie != nil {
		b = b.Set("burned_calorie", *body.BurnedCalorie)
	}

	query, args, err := b.Where(keyEq(key)).Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build body log update: %w", err)
	}

	var row ledgerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrLedgerNotFound, "ledger", keyString(key))
	}

	return toDomain(row), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func keyEq(key domain.LedgerKey) squirrel.Eq {
	return squirrel.Eq{"user_id": key.UserID, "record_date": domain.DayOf(key.Date)}
}

func keyString(key domain.LedgerKey) string {
	return key.UserID.String() + "/" + key.Date.Format(time.DateOnly)
}

func columnList() string {
	return strings.Join(ledgerColumns, ", ")
}

func toDomain(row ledgerRow) *domain.NutrientLedger {
	return &domain.NutrientLedger{
		ID:            row.ID,
		UserID:        row.UserID,
		Date:          domain.DayOf(row.RecordDate),
		TrackID:       row.TrackID,
		Consumed:      domain.Nutrients{Carb: row.Carb, Protein: row.Protein, Fat: row.Fat, Calorie: row.Calorie},
		GoalCalorie:   row.GoalCalorie,
		BurnedCalorie: row.BurnedCalorie,
		Water:         row.Water,
		Caffeine:      row.Caffeine,
		Alcohol:       row.Alcohol,
		CheatCount:    row.CheatCount,
		Weight:        row.Weight,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
