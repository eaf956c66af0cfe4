package services

import (
	"context"
	"time"

	"pennywise/internal/advisor"
	"pennywise/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// BudgetView is the caller-facing projection of a budget record. Expenses
// is keyed by the same display-name strings used on write ("Monthly Income"
// plus the eight categories); the charting client matches on them by name.
type BudgetView struct {
	MonthYear     string             `json:"monthYear"`
	MonthKey      string             `json:"monthKey"`
	Expenses      map[string]float64 `json:"expenses"`
	TotalExpenses float64            `json:"totalExpenses"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	Upsert(userID uint, date time.Time, amounts map[string]any) (*BudgetView, error)
	List(userID uint) ([]BudgetView, error)
	GetByMonth(userID uint, monthKey string) (*BudgetView, error)
}

// AdvisorServicer defines the contract for investment suggestions. Both
// operations degrade to static fallback content instead of returning errors;
// the caller always receives a well-shaped payload.
type AdvisorServicer interface {
	Recommendations(ctx context.Context, savings float64) *advisor.RecommendationSet
	Chat(ctx context.Context, message string) string
}
