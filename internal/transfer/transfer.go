// Package transfer implements the JSON backup format: a single document
// holding the three collections plus an export timestamp. Import is
// all-or-nothing per section; a section absent from the file leaves the
// corresponding collection alone.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"takip/internal/core"
)

// ErrInvalidFormat is returned for anything that does not parse as a backup
// document. No state changes when it is returned.
var ErrInvalidFormat = errors.New("invalid file format")

// Archive is the wire shape of a backup. Pointer slices distinguish a
// section that is absent from one that is present but empty.
type Archive struct {
	Expenses     *[]core.Expense     `json:"expenses,omitempty"`
	CreditCards  *[]core.CreditCard  `json:"creditCards,omitempty"`
	Transactions *[]core.Transaction `json:"transactions,omitempty"`
	ExportDate   time.Time           `json:"exportDate"`
}

// Export assembles a backup of the given collections, stamped now.
func Export(now time.Time, expenses []core.Expense, cards []core.CreditCard, transactions []core.Transaction) Archive {
	return Archive{
		Expenses:     &expenses,
		CreditCards:  &cards,
		Transactions: &transactions,
		ExportDate:   now,
	}
}

// Marshal renders the archive as indented JSON, the shape users see when
// they open the downloaded file.
func (a Archive) Marshal() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// Filename is the suggested download name, dated by export day.
func Filename(now time.Time) string {
	return fmt.Sprintf("takip-yedek-%s.json", now.Format("2006-01-02"))
}

// Parse decodes a backup document. Any JSON error, or a document carrying
// none of the three sections, is reported as ErrInvalidFormat.
func Parse(data []byte) (Archive, error) {
	var a Archive
	if err := json.Unmarshal(data, &a); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if a.Expenses == nil && a.CreditCards == nil && a.Transactions == nil {
		return Archive{}, ErrInvalidFormat
	}
	return a, nil
}
