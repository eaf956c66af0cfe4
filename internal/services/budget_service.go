package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// budgetUpdateColumns are the columns overwritten when an upsert hits an
// existing (user_id, month_key) row. created_at is deliberately absent:
// it is set once on first creation and never changes.
var budgetUpdateColumns = func() []string {
	cols := []string{"month_year", "monthly_income", "total_expenses", "updated_at"}
	for _, cat := range models.ExpenseCategories {
		cols = append(cols, cat.Column)
	}
	return cols
}()

// Upsert creates or replaces the budget for the month of date. The raw
// amounts are normalized into the canonical record (unknown keys dropped,
// missing or malformed values coerced to 0) and the derived total is
// recomputed before the write. The write is a single conditional insert
// keyed on (user_id, month_key), so two concurrent upserts for the same
// month cannot produce duplicate rows or a lost uniqueness invariant.
func (s *budgetService) Upsert(userID uint, date time.Time, amounts map[string]any) (*BudgetView, error) {
	budget := models.NewBudget(userID, date, amounts)

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
		DoUpdates: clause.AssignmentColumns(budgetUpdateColumns),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read the persisted row so the response reflects stored state
	// (in particular the original created_at on replacement).
	var stored models.Budget
	if err := s.db.Where("user_id = ? AND month_key = ?", userID, budget.MonthKey).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return newBudgetView(&stored), nil
}

// List returns all of the user's budgets ascending by month key.
// "YYYY-MM" keys sort lexicographically in chronological order.
func (s *budgetService) List(userID uint) ([]BudgetView, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("month_key ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]BudgetView, len(budgets))
	for i := range budgets {
		views[i] = *newBudgetView(&budgets[i])
	}
	return views, nil
}

// GetByMonth returns the user's budget for one month. A month with no
// record is BUDGET_NOT_FOUND, never a zero-filled record: callers must
// distinguish "no data yet" from "zero expenses recorded".
func (s *budgetService) GetByMonth(userID uint, monthKey string) (*BudgetView, error) {
	var budget models.Budget
	if err := s.db.Where("user_id = ? AND month_key = ?", userID, monthKey).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return newBudgetView(&budget), nil
}

// newBudgetView reshapes a stored record into the category-name-keyed view.
// Pure projection: the display-name strings must match the ones accepted on
// write exactly.
func newBudgetView(b *models.Budget) *BudgetView {
	expenses := make(map[string]float64, len(models.ExpenseCategories)+1)
	expenses[models.IncomeKey] = b.MonthlyIncome
	for _, cat := range models.ExpenseCategories {
		expenses[cat.Display] = b.CategoryAmount(cat.Column)
	}

	return &BudgetView{
		MonthYear:     b.MonthYear,
		MonthKey:      b.MonthKey,
		Expenses:      expenses,
		TotalExpenses: b.TotalExpenses,
	}
}
