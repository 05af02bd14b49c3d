package internal

import (
	"fmt"
	"strconv"
)

// Store owns the loaded transaction sequence and its parallel description
// sequence. descriptions[i] always describes transactions[i]; the two slices
// are only ever replaced together by a fresh load.
type Store struct {
	currency     Currency
	transactions []Transaction
	descriptions []string
}

func NewStore(currency Currency) *Store {
	return &Store{currency: currency}
}

// Load parses the file with the given parser and replaces any previously
// loaded data. On error the previous data is kept untouched (no partial load).
func (s *Store) Load(path string, p Parser) error {
	transactions, err := p.Parse(path)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	s.Replace(transactions)
	return nil
}

// Replace swaps in a new transaction sequence and rebuilds descriptions.
func (s *Store) Replace(transactions []Transaction) {
	descriptions := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		descriptions = append(descriptions, s.Describe(tx))
	}
	s.transactions = transactions
	s.descriptions = descriptions
}

// Describe renders one transaction as a retrievable sentence.
func (s *Store) Describe(tx Transaction) string {
	return fmt.Sprintf("On %s, %s purchased a %s for %s%s.",
		tx.Date, tx.Customer, tx.Product, s.currency.Symbol(), formatAmount(tx.Amount))
}

// All returns the full transaction sequence in insertion order.
func (s *Store) All() []Transaction {
	return s.transactions
}

// Descriptions returns the description sequence, index-aligned with All().
func (s *Store) Descriptions() []string {
	return s.descriptions
}

// formatAmount renders an amount without grouping, dropping a trailing ".0"
// for whole values: 500 → "500", 499.5 → "499.5".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
