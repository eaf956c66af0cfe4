package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudgetRequest represents the request payload for recording a month's
// budget. Expenses is keyed by display names ("Monthly Income", "Housing",
// ...); values are coerced leniently, so any JSON value is accepted.
type UpsertBudgetRequest struct {
	Expenses map[string]any `json:"expenses" binding:"required"`
	Date     string         `json:"date" binding:"required"`
}

// budgetDateLayouts are the accepted formats for the request date. Only the
// year and month are significant.
var budgetDateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01"}

func parseBudgetDate(value string) (time.Time, error) {
	var err error
	for _, layout := range budgetDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// MonthKeyURI binds and validates the month key path parameter.
type MonthKeyURI struct {
	MonthKey string `uri:"monthKey" binding:"required,month_key"`
}

// UpsertBudget handles creating or replacing the budget for a month.
// @Summary     Record a month's budget
// @Description Create or replace the budget for the month of the given date
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body UpsertBudgetRequest true "Category amounts and target date"
// @Success     200 {object} services.BudgetView "Upserted budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseBudgetDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be an ISO 8601 date"))
		return
	}

	view, err := h.budgetService.Upsert(userID, date, req.Expenses)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// GetBudgets handles listing all budgets of the authenticated user.
// @Summary     Get budgets
// @Description Get all budgets for the authenticated user, ascending by month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Success     200 {array} services.BudgetView "Budgets ascending by month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views, err := h.budgetService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": views})
}

// GetBudgetByMonth handles retrieving one month's budget.
// @Summary     Get budget by month
// @Description Get the budget for a specific month ("YYYY-MM")
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       monthKey path string true "Month key (YYYY-MM)"
// @Success     200 {object} services.BudgetView "Budget for the month"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget for this month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{monthKey} [get]
func (h *BudgetHandler) GetBudgetByMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var uri MonthKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month key must match YYYY-MM"))
		return
	}

	view, err := h.budgetService.GetByMonth(userID, uri.MonthKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}
