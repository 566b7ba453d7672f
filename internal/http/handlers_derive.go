package http

import (
	"net/http"
	"strconv"

	"takip/internal/core"
	"takip/internal/derive"
)

// Derived views. Everything here is recomputed from ledger state on each
// request.

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, derive.Summarize(s.now(), s.ledger.Cards()))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, derive.MonthlyCalendar(s.now(), s.ledger.Cards()))
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	n := derive.Notifications(s.now(), s.ledger.Cards(), s.ledger.Settings())
	if n == nil {
		n = []core.Notification{}
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Settings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req core.NotificationSettings
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.ledger.UpdateSettings(r.Context(), req))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	months := 6
	if v := r.URL.Query().Get("months"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 && m <= 24 {
			months = m
		}
	}

	now := s.now()
	expenses := s.ledger.Expenses()
	cards := s.ledger.Cards()
	txs := s.ledger.Transactions()

	writeJSON(w, http.StatusOK, map[string]any{
		"monthly":       derive.MonthlyStatsSeries(now, txs, months),
		"cards":         derive.CardStatsFor(txs, cards),
		"categories":    derive.CategoryBreakdown(expenses),
		"cardTotals":    derive.TotalsForCards(cards),
		"totalExpenses": derive.TotalExpenses(expenses),
		"monthTotal":    derive.MonthlyExpenseTotal(expenses, now.Year(), int(now.Month())),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": core.Categories,
		"cardTypes":  core.CardTypes,
		"cardColors": core.CardColors,
		"banks":      core.Banks,
	})
}
