package core

import "strings"

// Validation returns the ordered list of human-readable reasons a candidate
// record is invalid. An empty list means the record may be created. Partially
// filled candidates are expected; every failing rule contributes one reason.

// ValidateExpense checks an expense candidate.
func ValidateExpense(e Expense) []string {
	var reasons []string
	if e.Amount.Cents <= 0 {
		reasons = append(reasons, "amount must be greater than zero")
	}
	if e.Category == "" {
		reasons = append(reasons, "category must be selected")
	} else if !ValidCategory(e.Category) {
		reasons = append(reasons, "unknown category")
	}
	if strings.TrimSpace(e.Description) == "" {
		reasons = append(reasons, "description must not be empty")
	}
	if e.Date.IsZero() {
		reasons = append(reasons, "date must be set")
	}
	return reasons
}

// ValidateCard checks a credit card candidate. Day-of-month fields are only
// range-checked against [1, 31]; whether the day exists in a given month is
// not validated here (short months roll the due date forward).
func ValidateCard(c CreditCard) []string {
	var reasons []string
	if strings.TrimSpace(c.Name) == "" {
		reasons = append(reasons, "card name must not be empty")
	}
	if strings.TrimSpace(c.Bank) == "" {
		reasons = append(reasons, "bank must not be empty")
	}
	if c.Limit.Cents <= 0 {
		reasons = append(reasons, "limit must be greater than zero")
	}
	if c.CurrentDebt.Cents < 0 {
		reasons = append(reasons, "current debt must not be negative")
	}
	if c.MinimumPayment.Cents < 0 {
		reasons = append(reasons, "minimum payment must not be negative")
	}
	if c.StatementDay < 1 || c.StatementDay > 31 {
		reasons = append(reasons, "statement day must be between 1 and 31")
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		reasons = append(reasons, "due day must be between 1 and 31")
	}
	if c.Type == "" {
		reasons = append(reasons, "card type must be selected")
	} else if !ValidCardType(c.Type) {
		reasons = append(reasons, "unknown card type")
	}
	if c.Color == "" {
		reasons = append(reasons, "card color must be selected")
	} else if !ValidCardColor(c.Color) {
		reasons = append(reasons, "unknown card color")
	}
	return reasons
}

// ValidateTransaction checks a payment/expense candidate against a card.
func ValidateTransaction(t Transaction) []string {
	var reasons []string
	if strings.TrimSpace(t.CardID) == "" {
		reasons = append(reasons, "card must be selected")
	}
	if t.Type != TransactionPayment && t.Type != TransactionExpense {
		reasons = append(reasons, "transaction type must be payment or expense")
	}
	if t.Amount.Cents <= 0 {
		reasons = append(reasons, "amount must be greater than zero")
	}
	return reasons
}
