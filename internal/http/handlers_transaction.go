package http

import (
	"net/http"
	"strconv"

	"takip/internal/core"
	"takip/internal/derive"
	"takip/internal/ledger"
)

type transactionRequest struct {
	CardID      string `json:"cardId"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	// Overrides the server default when set: "reject" or "allow".
	OverLimit string `json:"overLimit,omitempty"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.ledger.Transactions()
	if v := r.URL.Query().Get("cardId"); v != "" {
		txs = derive.TransactionsByCard(txs, v)
	}
	if v := r.URL.Query().Get("type"); v != "" {
		txs = derive.TransactionsByType(txs, core.TransactionType(v))
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			txs = derive.RecentTransactions(txs, limit)
		}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	policy := s.policy
	switch req.OverLimit {
	case "":
	case string(ledger.RejectOverLimit):
		policy = ledger.RejectOverLimit
	case string(ledger.AllowOverLimit):
		policy = ledger.AllowOverLimit
	default:
		badRequest(w, "overLimit must be 'reject' or 'allow'")
		return
	}

	tx, err := s.ledger.RecordTransaction(r.Context(), req.CardID, core.TransactionType(req.Type), core.Money{Cents: cents}, req.Description, policy)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handlePayAllMinimums(w http.ResponseWriter, r *http.Request) {
	count, total := s.ledger.PayAllMinimums(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"paymentsMade": count,
		"totalPaid":    total,
	})
}
