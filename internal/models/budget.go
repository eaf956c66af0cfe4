package models

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Budget represents one user's budget for a single calendar month.
// MonthKey is the canonical "YYYY-MM" identifier; (user_id, month_key)
// is unique across the table. MonthYear is a display rendering only and
// is never used for lookups or sorting.
type Budget struct {
	Base
	UserID    uint   `gorm:"not null;uniqueIndex:idx_budgets_user_month" json:"user_id"`
	MonthKey  string `gorm:"size:7;not null;uniqueIndex:idx_budgets_user_month" json:"month_key"`
	MonthYear string `gorm:"size:16;not null" json:"month_year"`

	MonthlyIncome float64 `gorm:"not null;default:0" json:"monthly_income"`

	Housing          float64 `gorm:"not null;default:0" json:"housing"`
	Transportation   float64 `gorm:"not null;default:0" json:"transportation"`
	FoodAndGroceries float64 `gorm:"not null;default:0" json:"food_and_groceries"`
	Healthcare       float64 `gorm:"not null;default:0" json:"healthcare"`
	Entertainment    float64 `gorm:"not null;default:0" json:"entertainment"`
	DiningOut        float64 `gorm:"not null;default:0" json:"dining_out"`
	Education        float64 `gorm:"not null;default:0" json:"education"`
	DebtPayments     float64 `gorm:"not null;default:0" json:"debt_payments"`

	// TotalExpenses is derived: always the sum of the eight expense
	// columns, income excluded. Recomputed on every write.
	TotalExpenses float64 `gorm:"not null;default:0" json:"total_expenses"`
}

// IncomeKey is the special input key carrying the month's income. It is
// never counted into TotalExpenses.
const IncomeKey = "Monthly Income"

// ExpenseCategories lists the eight expense categories in their canonical
// order, pairing the display name clients send with the internal column.
// Callers match on the display names by string, so they must round-trip
// exactly.
var ExpenseCategories = []struct {
	Display string
	Column  string
}{
	{"Housing", "housing"},
	{"Transportation", "transportation"},
	{"Food & Groceries", "food_and_groceries"},
	{"Healthcare", "healthcare"},
	{"Entertainment", "entertainment"},
	{"Dining Out", "dining_out"},
	{"Education", "education"},
	{"Debt Payments", "debt_payments"},
}

// MonthKeyOf derives the canonical "YYYY-MM" key for a date. Lexicographic
// order of keys in this format is chronological order.
func MonthKeyOf(date time.Time) string {
	return fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
}

// MonthYearOf derives the display rendering of a date's month, e.g. "Mar 2024".
func MonthYearOf(date time.Time) string {
	return date.Format("Jan 2006")
}

// CoerceAmount converts an arbitrary JSON value into a non-negative amount.
// Numbers pass through, numeric strings are parsed, everything else becomes
// 0. Negative values also become 0. Malformed amounts never reject a request.
func CoerceAmount(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a valid amount, and
	// NaN would slip past the sign check below.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}

// NewBudget builds a canonical Budget from raw category amounts keyed by
// display name. Unknown keys are dropped, missing categories default to 0,
// and TotalExpenses is computed from the eight categories.
func NewBudget(userID uint, date time.Time, amounts map[string]any) *Budget {
	b := &Budget{
		UserID:        userID,
		MonthKey:      MonthKeyOf(date),
		MonthYear:     MonthYearOf(date),
		MonthlyIncome: CoerceAmount(amounts[IncomeKey]),
	}

	var total float64
	for _, cat := range ExpenseCategories {
		amount := CoerceAmount(amounts[cat.Display])
		b.setCategory(cat.Column, amount)
		total += amount
	}
	b.TotalExpenses = total

	return b
}

// CategoryAmount returns the stored amount for an internal column name.
func (b *Budget) CategoryAmount(column string) float64 {
	switch column {
	case "housing":
		return b.Housing
	case "transportation":
		return b.Transportation
	case "food_and_groceries":
		return b.FoodAndGroceries
	case "healthcare":
		return b.Healthcare
	case "entertainment":
		return b.Entertainment
	case "dining_out":
		return b.DiningOut
	case "education":
		return b.Education
	case "debt_payments":
		return b.DebtPayments
	}
	return 0
}

func (b *Budget) setCategory(column string, amount float64) {
	switch column {
	case "housing":
		b.Housing = amount
	case "transportation":
		b.Transportation = amount
	case "food_and_groceries":
		b.FoodAndGroceries = amount
	case "healthcare":
		b.Healthcare = amount
	case "entertainment":
		b.Entertainment = amount
	case "dining_out":
		b.DiningOut = amount
	case "education":
		b.Education = amount
	case "debt_payments":
		b.DebtPayments = amount
	}
}
