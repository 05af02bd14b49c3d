package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonTransaction mirrors one element of the JSON source array. Pointers let
// us tell a missing field apart from a zero value.
type jsonTransaction struct {
	Date     *string  `json:"date"`
	Customer *string  `json:"customer"`
	Product  *string  `json:"product"`
	Amount   *float64 `json:"amount"`
}

// ParseJSON parses a JSON array of purchase records:
//
//	[
//	  {"date": "2024-01-15", "customer": "Amit", "product": "Laptop", "amount": 55000},
//	  {"date": "2024-01-20", "customer": "Riya", "product": "Phone", "amount": 30000}
//	]
//
// Any missing field, non-numeric amount or malformed date fails the whole load.
func ParseJSON(path string) ([]Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var records []jsonTransaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var transactions []Transaction
	for i, rec := range records {
		if rec.Date == nil || rec.Customer == nil || rec.Product == nil || rec.Amount == nil {
			return nil, fmt.Errorf("record %d: missing required field", i)
		}
		if _, err := time.Parse("2006-01-02", *rec.Date); err != nil {
			return nil, fmt.Errorf("record %d: parsing date %q: %w", i, *rec.Date, err)
		}
		transactions = append(transactions, Transaction{
			Date:     *rec.Date,
			Customer: *rec.Customer,
			Product:  *rec.Product,
			Amount:   *rec.Amount,
		})
	}

	return transactions, nil
}

func init() {
	RegisterParser("json", ParserFunc(ParseJSON))
}
