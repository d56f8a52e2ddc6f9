package meal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories the
// service and the compliance tracker use. RunInTx snapshots the mutable
// state and restores it when the callback fails, so tests can assert that
// failed operations leave nothing behind.
type memStore struct {
	state memState

	foods    map[int64]domain.FoodFacts
	routines map[uuid.UUID]*domain.Routine
	fail     map[string]error

	applyCalls int
}

type memState struct {
	ledgers       map[string]domain.NutrientLedger
	dishes        map[uuid.UUID]domain.Dish
	checks        []domain.PlannedFoodCheck
	routineChecks map[string]domain.RoutineCheck
}

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			ledgers:       make(map[string]domain.NutrientLedger),
			dishes:        make(map[uuid.UUID]domain.Dish),
			routineChecks: make(map[string]domain.RoutineCheck),
		},
		foods:    make(map[int64]domain.FoodFacts),
		routines: make(map[uuid.UUID]*domain.Routine),
		fail:     make(map[string]error),
	}
}

func (st memState) clone() memState {
	out := memState{
		ledgers:       make(map[string]domain.NutrientLedger, len(st.ledgers)),
		dishes:        make(map[uuid.UUID]domain.Dish, len(st.dishes)),
		checks:        append([]domain.PlannedFoodCheck(nil), st.checks...),
		routineChecks: make(map[string]domain.RoutineCheck, len(st.routineChecks)),
	}
	for k, v := range st.ledgers {
		out.ledgers[k] = v
	}
	for k, v := range st.dishes {
		out.dishes[k] = v
	}
	for k, v := range st.routineChecks {
		out.routineChecks[k] = v
	}
	return out
}

func (m *memStore) injected(method string) error {
	return m.fail[method]
}

// ---------------------------------------------------------------------------
// txManager
// ---------------------------------------------------------------------------

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := m.state.clone()
	if err := fn(ctx); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// dishRepo
// ---------------------------------------------------------------------------

func (m *memStore) GetByID(_ context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	d, ok := m.state.dishes[dishID]
	if !ok {
		return nil, fmt.Errorf("dish %s: %w", dishID, domain.ErrRecordNotFound)
	}
	return &d, nil
}

func (m *memStore) GetForUpdate(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	return m.GetByID(ctx, dishID)
}

func (m *memStore) ListByDay(_ context.Context, key domain.LedgerKey) ([]domain.Dish, error) {
	var out []domain.Dish
	for _, d := range m.state.dishes {
		if d.UserID == key.UserID && d.Date.Equal(domain.DayOf(key.Date)) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Create(_ context.Context, d *domain.Dish) (*domain.Dish, error) {
	if err := m.injected("Create"); err != nil {
		return nil, err
	}
	if _, ok := m.state.ledgers[memKey(d.LedgerKey())]; !ok {
		return nil, fmt.Errorf("dish ledger: %w", domain.ErrNotFound)
	}
	if _, ok := m.state.dishes[d.ID]; ok {
		return nil, domain.ErrAlreadyExists
	}
	stored := *d
	m.state.dishes[d.ID] = stored
	return &stored, nil
}

func (m *memStore) Update(_ context.Context, d *domain.Dish) (*domain.Dish, error) {
	if err := m.injected("Update"); err != nil {
		return nil, err
	}
	if _, ok := m.state.dishes[d.ID]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	stored := *d
	m.state.dishes[d.ID] = stored
	return &stored, nil
}

func (m *memStore) Delete(_ context.Context, dishID uuid.UUID) error {
	if _, ok := m.state.dishes[dishID]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.state.dishes, dishID)
	return nil
}

// ---------------------------------------------------------------------------
// ledgerRepo
// ---------------------------------------------------------------------------

func (m *memStore) ApplyDelta(_ context.Context, key domain.LedgerKey, delta domain.Nutrients) (*domain.NutrientLedger, error) {
	m.applyCalls++
	if err := m.injected("ApplyDelta"); err != nil {
		return nil, err
	}
	l, ok := m.state.ledgers[memKey(key)]
	if !ok {
		return nil, domain.ErrLedgerNotFound
	}
	l.Consumed = l.Consumed.Add(delta)
	m.state.ledgers[memKey(key)] = l
	return &l, nil
}

// ---------------------------------------------------------------------------
// catalogRepo / planRepo
// ---------------------------------------------------------------------------

func (m *memStore) GetByKey(_ context.Context, label int64) (*domain.FoodFacts, error) {
	f, ok := m.foods[label]
	if !ok {
		return nil, domain.ErrCatalogEntryNotFound
	}
	return &f, nil
}

func (m *memStore) GetRoutine(_ context.Context, routineID uuid.UUID) (*domain.Routine, error) {
	r, ok := m.routines[routineID]
	if !ok {
		return nil, domain.ErrRoutineNotFound
	}
	cp := *r
	cp.PlannedFoods = append([]domain.PlannedFood(nil), r.PlannedFoods...)
	return &cp, nil
}

func (m *memStore) FindRoutine(ctx context.Context, trackID uuid.UUID, dayIndex int, mealTime domain.MealTime) (*domain.Routine, error) {
	for _, r := range m.routines {
		if r.TrackID == trackID && r.DayIndex == dayIndex && r.MealTime == mealTime {
			return m.GetRoutine(ctx, r.ID)
		}
	}
	return nil, domain.ErrRoutineNotFound
}

func (m *memStore) GetPlannedFood(_ context.Context, plannedFoodID uuid.UUID) (*domain.PlannedFood, error) {
	for _, r := range m.routines {
		for _, pf := range r.PlannedFoods {
			if pf.ID == plannedFoodID {
				return &pf, nil
			}
		}
	}
	return nil, domain.ErrPlannedFoodNotFound
}

// ---------------------------------------------------------------------------
// compliance check repository
// ---------------------------------------------------------------------------

func (m *memStore) CreateFoodCheck(_ context.Context, c domain.PlannedFoodCheck) error {
	if err := m.injected("CreateFoodCheck"); err != nil {
		return err
	}
	for _, f := range m.state.checks {
		if (f.PlannedFoodID == c.PlannedFoodID && f.UserID == c.UserID) || f.DishID == c.DishID {
			return domain.ErrCheckAlreadyExists
		}
	}
	m.state.checks = append(m.state.checks, c)
	return nil
}

func (m *memStore) GetFoodCheckByDish(_ context.Context, dishID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	for _, f := range m.state.checks {
		if f.DishID == dishID {
			c := f
			return &c, nil
		}
	}
	return nil, domain.ErrCheckNotFound
}

func (m *memStore) GetFoodCheckByPlannedFood(_ context.Context, plannedFoodID, userID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	for _, f := range m.state.checks {
		if f.PlannedFoodID == plannedFoodID && f.UserID == userID {
			c := f
			return &c, nil
		}
	}
	return nil, domain.ErrCheckNotFound
}

func (m *memStore) ListFoodChecks(_ context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) ([]domain.PlannedFoodCheck, error) {
	var out []domain.PlannedFoodCheck
	for _, f := range m.state.checks {
		for _, id := range plannedFoodIDs {
			if f.PlannedFoodID == id && f.UserID == userID {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func (m *memStore) CountFoodChecks(_ context.Context, routineID, userID uuid.UUID) (int, error) {
	n := 0
	for _, f := range m.state.checks {
		if f.RoutineID == routineID && f.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteFoodCheck(_ context.Context, plannedFoodID, dishID, userID uuid.UUID) error {
	for i, f := range m.state.checks {
		if f.PlannedFoodID == plannedFoodID && f.DishID == dishID && f.UserID == userID {
			m.state.checks = append(m.state.checks[:i:i], m.state.checks[i+1:]...)
			return nil
		}
	}
	return domain.ErrCheckNotFound
}

func (m *memStore) SetFoodCheckQuantity(_ context.Context, dishID uuid.UUID, quantity int) error {
	for i := range m.state.checks {
		if m.state.checks[i].DishID == dishID {
			m.state.checks[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrCheckNotFound
}

func (m *memStore) GetRoutineCheck(_ context.Context, routineID, userID uuid.UUID) (*domain.RoutineCheck, error) {
	rc, ok := m.state.routineChecks[routineID.String()+"/"+userID.String()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rc, nil
}

func (m *memStore) SetRoutineCheck(_ context.Context, c domain.RoutineCheck) error {
	m.state.routineChecks[c.RoutineID.String()+"/"+c.UserID.String()] = c
	return nil
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func memKey(key domain.LedgerKey) string {
	return key.UserID.String() + "/" + domain.DayOf(key.Date).Format(time.DateOnly)
}

func (m *memStore) openDay(userID uuid.UUID, date time.Time) {
	key := domain.NewLedgerKey(userID, date)
	m.state.ledgers[memKey(key)] = domain.NutrientLedger{ID: uuid.New(), UserID: userID, Date: key.Date, GoalCalorie: 2000}
}

func (m *memStore) ledger(userID uuid.UUID, date time.Time) domain.NutrientLedger {
	return m.state.ledgers[memKey(domain.NewLedgerKey(userID, date))]
}

// dishTotal sums the snapshots of every dish on a ledger.
func (m *memStore) dishTotal(userID uuid.UUID, date time.Time) domain.Nutrients {
	var total domain.Nutrients
	for _, d := range m.state.dishes {
		if d.UserID == userID && d.Date.Equal(domain.DayOf(date)) {
			total = total.Add(d.Portion.Nutrients)
		}
	}
	return total
}

func (m *memStore) routineComplete(routineID, userID uuid.UUID) bool {
	return m.state.routineChecks[routineID.String()+"/"+userID.String()].IsComplete
}

func (m *memStore) checkOf(dishID uuid.UUID) *domain.PlannedFoodCheck {
	for _, f := range m.state.checks {
		if f.DishID == dishID {
			c := f
			return &c
		}
	}
	return nil
}
