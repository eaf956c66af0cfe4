package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertBudgetInvariants checks the at-rest invariants of a stored budget:
// every monetary field is a finite non-negative number and the derived
// total equals the sum of the eight expense categories.
func AssertBudgetInvariants(t *testing.T, b *models.Budget) {
	t.Helper()

	checkAmount := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s is not finite: %v", name, v)
		}
		if v < 0 {
			t.Errorf("%s is negative: %v", name, v)
		}
	}

	checkAmount("monthly income", b.MonthlyIncome)
	checkAmount("total expenses", b.TotalExpenses)

	var sum float64
	for _, cat := range models.ExpenseCategories {
		amount := b.CategoryAmount(cat.Column)
		checkAmount(cat.Display, amount)
		sum += amount
	}
	if b.TotalExpenses != sum {
		t.Errorf("total expenses %v does not match category sum %v", b.TotalExpenses, sum)
	}
}
