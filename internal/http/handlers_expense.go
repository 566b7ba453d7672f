package http

import (
	"net/http"
	"strconv"
	"time"

	"takip/internal/core"
	"takip/internal/derive"
)

// expenseRequest is the create/update body. Amount arrives as a decimal
// string ("125,50" or "125.50") and is stored as kuruş.
type expenseRequest struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

func (req expenseRequest) toExpense() (core.Expense, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Expense{}, err
	}
	e := core.Expense{
		Amount:      core.Money{Cents: cents},
		Category:    core.ExpenseCategory(req.Category),
		Description: req.Description,
	}
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return core.Expense{}, err
		}
		e.Date = core.DateOf(t)
	}
	return e, nil
}

// handleListExpenses supports ?year=&month=, ?category=, ?q= and ?sort=asc
// query filters, applied in that order.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expenses := s.ledger.Expenses()

	if ys, ms := q.Get("year"), q.Get("month"); ys != "" && ms != "" {
		year, yerr := strconv.Atoi(ys)
		month, merr := strconv.Atoi(ms)
		if yerr != nil || merr != nil || month < 1 || month > 12 {
			badRequest(w, "year and month must be numeric, month in 1-12")
			return
		}
		expenses = derive.ExpensesInMonth(expenses, year, month)
	}
	if v := q.Get("category"); v != "" {
		expenses = derive.ExpensesByCategory(expenses, core.ExpenseCategory(v))
	}
	if v := q.Get("q"); v != "" {
		expenses = derive.SearchExpenses(expenses, v)
	}
	expenses = derive.SortExpensesByDate(expenses, q.Get("sort") == "asc")

	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	e, err := req.toExpense()
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	created, err := s.ledger.AddExpense(r.Context(), e)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	e, err := req.toExpense()
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	e.ID = r.PathValue("id")
	updated, err := s.ledger.UpdateExpense(r.Context(), e)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
