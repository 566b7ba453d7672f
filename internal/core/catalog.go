package core

import "strings"

// Static lookup tables: expense categories, card networks, card colors and
// the bank list offered in forms. These mirror what the UI renders and are
// also served verbatim over the API.

const (
	CategoryMarket        ExpenseCategory = "market"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryBills         ExpenseCategory = "bills"
	CategoryFood          ExpenseCategory = "food"
	CategoryClothing      ExpenseCategory = "clothing"
	CategoryHealth        ExpenseCategory = "health"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryGeneral       ExpenseCategory = "general"
)

const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardAmex       CardType = "amex"
	CardTroy       CardType = "troy"
)

const (
	ColorBlue   CardColor = "blue"
	ColorRed    CardColor = "red"
	ColorGreen  CardColor = "green"
	ColorPurple CardColor = "purple"
	ColorOrange CardColor = "orange"
	ColorPink   CardColor = "pink"
	ColorGray   CardColor = "gray"
	ColorGold   CardColor = "gold"
)

// BankOther is the form placeholder that must be replaced with a free-text
// bank name before a card is created.
const BankOther = "other"

type (
	CategoryInfo struct {
		Name  string `json:"name"`
		Emoji string `json:"emoji"`
		Color string `json:"color"`
	}

	CardTypeInfo struct {
		Name string `json:"name"`
		Logo string `json:"logo"`
	}

	CardColorInfo struct {
		Name      string `json:"name"`
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
	}
)

var Categories = map[ExpenseCategory]CategoryInfo{
	CategoryMarket:        {Name: "Market", Emoji: "🛒", Color: "#ef4444"},
	CategoryTransport:     {Name: "Ulaşım", Emoji: "🚗", Color: "#3b82f6"},
	CategoryBills:         {Name: "Faturalar", Emoji: "📄", Color: "#f59e0b"},
	CategoryFood:          {Name: "Yemek", Emoji: "🍽️", Color: "#10b981"},
	CategoryClothing:      {Name: "Giyim", Emoji: "👔", Color: "#8b5cf6"},
	CategoryHealth:        {Name: "Sağlık", Emoji: "⚕️", Color: "#06b6d4"},
	CategoryEntertainment: {Name: "Eğlence", Emoji: "🎮", Color: "#f97316"},
	CategoryGeneral:       {Name: "Genel", Emoji: "📋", Color: "#6b7280"},
}

var CardTypes = map[CardType]CardTypeInfo{
	CardVisa:       {Name: "Visa", Logo: "💳"},
	CardMastercard: {Name: "MasterCard", Logo: "💳"},
	CardAmex:       {Name: "American Express", Logo: "💳"},
	CardTroy:       {Name: "Troy", Logo: "💳"},
}

var CardColors = map[CardColor]CardColorInfo{
	ColorBlue:   {Name: "Mavi", Primary: "#3b82f6", Secondary: "#dbeafe"},
	ColorRed:    {Name: "Kırmızı", Primary: "#ef4444", Secondary: "#fee2e2"},
	ColorGreen:  {Name: "Yeşil", Primary: "#10b981", Secondary: "#d1fae5"},
	ColorPurple: {Name: "Mor", Primary: "#8b5cf6", Secondary: "#ede9fe"},
	ColorOrange: {Name: "Turuncu", Primary: "#f97316", Secondary: "#fed7aa"},
	ColorPink:   {Name: "Pembe", Primary: "#ec4899", Secondary: "#fce7f3"},
	ColorGray:   {Name: "Gri", Primary: "#6b7280", Secondary: "#f3f4f6"},
	ColorGold:   {Name: "Altın", Primary: "#f59e0b", Secondary: "#fef3c7"},
}

// Banks is the fixed list offered when adding a card. BankOther is the
// escape hatch for anything not listed.
var Banks = []string{
	"Ziraat Bankası",
	"İş Bankası",
	"Garanti BBVA",
	"Akbank",
	"Yapı Kredi",
	"QNB Finansbank",
	"Denizbank",
	"Halkbank",
	"Vakıfbank",
	BankOther,
}

// ValidCategory reports whether the category is one of the fixed set.
func ValidCategory(c ExpenseCategory) bool {
	_, ok := Categories[c]
	return ok
}

// ValidCardType reports whether the card network is known.
func ValidCardType(t CardType) bool {
	_, ok := CardTypes[t]
	return ok
}

// ValidCardColor reports whether the color is in the fixed palette.
func ValidCardColor(c CardColor) bool {
	_, ok := CardColors[c]
	return ok
}

// ResolveBank applies the "other" substitution rule: when bank is the
// placeholder, the free-text name must be non-empty and is used instead.
func ResolveBank(bank, customName string) (string, error) {
	if bank != BankOther {
		return bank, nil
	}
	name := strings.TrimSpace(customName)
	if name == "" {
		return "", ErrBankNameMissing
	}
	return name, nil
}
