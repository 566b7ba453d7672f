package http

import (
	"io"
	"net/http"

	"takip/internal/transfer"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	archive := transfer.Export(now, s.ledger.Expenses(), s.ledger.Cards(), s.ledger.Transactions())
	data, err := archive.Marshal()
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+transfer.Filename(now)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImport replaces only the collections present in the uploaded file.
// A malformed file changes nothing.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		badRequest(w, "request body too large or unreadable")
		return
	}
	archive, err := transfer.Parse(data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.ledger.Restore(r.Context(), archive.Expenses, archive.CreditCards, archive.Transactions)
	writeJSON(w, http.StatusOK, map[string]any{
		"imported": map[string]bool{
			"expenses":     archive.Expenses != nil,
			"creditCards":  archive.CreditCards != nil,
			"transactions": archive.Transactions != nil,
		},
	})
}
