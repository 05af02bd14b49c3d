package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads purchase records from an Excel sheet with a header row
// containing Date, Customer, Product and Amount columns (any order).
func ParseXLSX(path string) ([]Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find header row and column indices
	dateCol, customerCol, productCol, amountCol := -1, -1, -1, -1
	dataStartRow := -1

	for i, row := range rows {
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "date":
				dateCol = j
				dataStartRow = i + 1
			case "customer":
				customerCol = j
			case "product":
				productCol = j
			case "amount":
				amountCol = j
			}
		}
		if dateCol >= 0 && customerCol >= 0 && productCol >= 0 && amountCol >= 0 {
			break
		}
	}

	if dateCol < 0 || customerCol < 0 || productCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("could not find required columns (Date, Customer, Product, Amount)")
	}

	var transactions []Transaction
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		maxCol := max(dateCol, customerCol, productCol, amountCol)
		if len(row) <= maxCol {
			continue
		}

		dateStr := strings.TrimSpace(row[dateCol])
		customer := strings.TrimSpace(row[customerCol])
		product := strings.TrimSpace(row[productCol])
		amountStr := strings.TrimSpace(row[amountCol])

		// Skip empty rows
		if dateStr == "" && customer == "" && product == "" && amountStr == "" {
			continue
		}
		if dateStr == "" || customer == "" || product == "" || amountStr == "" {
			return nil, fmt.Errorf("row %d: missing required field", i+1)
		}

		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+1, dateStr, err)
		}

		amountStr = strings.ReplaceAll(amountStr, ",", "")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+1, amountStr, err)
		}

		transactions = append(transactions, Transaction{
			Date:     dateStr,
			Customer: customer,
			Product:  product,
			Amount:   amount,
		})
	}

	return transactions, nil
}

func init() {
	RegisterParser("xlsx", ParserFunc(ParseXLSX))
}
