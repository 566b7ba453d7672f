package http

import (
	"net/http"

	"takip/internal/core"
)

// cardRequest is the create/update body. Money fields arrive as decimal
// strings; customBank carries the free-text name when bank is "other".
type cardRequest struct {
	Name           string `json:"name"`
	Bank           string `json:"bank"`
	CustomBank     string `json:"customBank,omitempty"`
	Limit          string `json:"limit"`
	CurrentDebt    string `json:"currentDebt,omitempty"`
	MinimumPayment string `json:"minimumPayment,omitempty"`
	StatementDay   int    `json:"statementDate"`
	DueDay         int    `json:"dueDate"`
	Type           string `json:"cardType"`
	Color          string `json:"color"`
}

func (req cardRequest) toCard() (core.CreditCard, error) {
	limit, err := core.ParseDecimalToCents(req.Limit)
	if err != nil {
		return core.CreditCard{}, err
	}
	c := core.CreditCard{
		Name:         req.Name,
		Bank:         req.Bank,
		Limit:        core.Money{Cents: limit},
		StatementDay: req.StatementDay,
		DueDay:       req.DueDay,
		Type:         core.CardType(req.Type),
		Color:        core.CardColor(req.Color),
	}
	// Debt and minimum payment may legitimately be zero, so empty means zero
	// rather than invalid.
	if req.CurrentDebt != "" {
		cents, err := core.ParseDecimalToCents(req.CurrentDebt)
		if err != nil {
			return core.CreditCard{}, err
		}
		c.CurrentDebt = core.Money{Cents: cents}
	}
	if req.MinimumPayment != "" {
		cents, err := core.ParseDecimalToCents(req.MinimumPayment)
		if err != nil {
			return core.CreditCard{}, err
		}
		c.MinimumPayment = core.Money{Cents: cents}
	}
	return c, nil
}

// cardView augments the stored card with its derived fields.
type cardView struct {
	core.CreditCard
	AvailableCredit core.Money `json:"availableCredit"`
	Utilization     float64    `json:"utilization"`
}

func viewCards(cards []core.CreditCard) []cardView {
	out := make([]cardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardView{
			CreditCard:      c,
			AvailableCredit: c.AvailableCredit(),
			Utilization:     c.Utilization(),
		})
	}
	return out
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewCards(s.ledger.Cards()))
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	card, err := req.toCard()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.ledger.AddCard(r.Context(), card, req.CustomBank)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewCards([]core.CreditCard{created})[0])
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	card, err := req.toCard()
	if err != nil {
		writeError(w, r, err)
		return
	}
	card.ID = r.PathValue("id")
	updated, err := s.ledger.UpdateCard(r.Context(), card, req.CustomBank)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewCards([]core.CreditCard{updated})[0])
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteCard(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
