package internal

import (
	"reflect"
	"testing"
)

func TestTotalSpending(t *testing.T) {
	txs := testTransactions()

	tests := []struct {
		name     string
		customer string
		expected float64
	}{
		{"exact case", "Amit", 83000},
		{"case insensitive", "amit", 83000},
		{"other customer", "Riya", 61000},
		{"unknown customer", "Nobody", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalSpending(txs, tt.customer); got != tt.expected {
				t.Errorf("TotalSpending(%q) = %v, want %v", tt.customer, got, tt.expected)
			}
		})
	}
}

func TestTransactionsFor(t *testing.T) {
	txs := testTransactions()

	got := TransactionsFor(txs, "RIYA")
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].Date != "2024-01-20" || got[1].Date != "2024-03-02" {
		t.Errorf("transactions out of insertion order: %v", got)
	}

	if got := TransactionsFor(txs, "Nobody"); len(got) != 0 {
		t.Errorf("got %d transactions for unknown customer, want 0", len(got))
	}
}

func TestTransactionsForMonth(t *testing.T) {
	txs := testTransactions()

	tests := []struct {
		yearMonth string
		count     int
	}{
		{"2024-01", 2},
		{"2024-02", 2},
		{"2024-03", 1},
		{"2024-12", 0},
		{"2023-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.yearMonth, func(t *testing.T) {
			if got := TransactionsForMonth(txs, tt.yearMonth); len(got) != tt.count {
				t.Errorf("TransactionsForMonth(%q) returned %d, want %d", tt.yearMonth, len(got), tt.count)
			}
		})
	}
}

func TestAverageOrderAmount(t *testing.T) {
	tests := []struct {
		name     string
		txs      []Transaction
		expected float64
	}{
		{"empty", nil, 0},
		{"two orders", []Transaction{{Amount: 100}, {Amount: 200}}, 150},
		{"single order", []Transaction{{Amount: 42}}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageOrderAmount(tt.txs); got != tt.expected {
				t.Errorf("AverageOrderAmount() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMostPurchasedProduct(t *testing.T) {
	tests := []struct {
		name     string
		txs      []Transaction
		expected string
	}{
		{
			name:     "clear winner",
			txs:      []Transaction{{Product: "A"}, {Product: "B"}, {Product: "A"}},
			expected: "A",
		},
		{
			// Tie-break is first product encountered in transaction order.
			name:     "tie goes to first seen",
			txs:      []Transaction{{Product: "B"}, {Product: "A"}},
			expected: "B",
		},
		{
			name:     "empty store sentinel",
			txs:      nil,
			expected: "No products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostPurchasedProduct(tt.txs); got != tt.expected {
				t.Errorf("MostPurchasedProduct() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAllCustomers(t *testing.T) {
	txs := testTransactions()

	got := AllCustomers(txs)
	want := []string{"Amit", "Riya", "Sneha"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllCustomers() = %v, want %v", got, want)
	}
}

func TestAllCustomers_CaseSensitiveUniqueness(t *testing.T) {
	txs := []Transaction{
		{Customer: "amit"},
		{Customer: "Amit"},
		{Customer: "amit"},
	}

	got := AllCustomers(txs)
	if len(got) != 2 {
		t.Errorf("AllCustomers() = %v, want two case-distinct names", got)
	}
}

func TestSpendingBreakdown(t *testing.T) {
	data := SpendingBreakdown(testTransactions())

	wantMonthly := []MonthAmount{
		{Month: "2024-01", Amount: 85000},
		{Month: "2024-02", Amount: 30500},
		{Month: "2024-03", Amount: 31000},
	}
	if !reflect.DeepEqual(data.MonthlySpending, wantMonthly) {
		t.Errorf("MonthlySpending = %v, want %v", data.MonthlySpending, wantMonthly)
	}

	wantCustomers := []CustomerAmount{
		{Customer: "Amit", Amount: 83000},
		{Customer: "Riya", Amount: 61000},
		{Customer: "Sneha", Amount: 2500},
	}
	if !reflect.DeepEqual(data.CustomerSpending, wantCustomers) {
		t.Errorf("CustomerSpending = %v, want %v", data.CustomerSpending, wantCustomers)
	}

	wantProducts := []ProductCount{
		{Product: "Laptop", Count: 1},
		{Product: "Phone", Count: 3},
		{Product: "Headphones", Count: 1},
	}
	if !reflect.DeepEqual(data.ProductFrequency, wantProducts) {
		t.Errorf("ProductFrequency = %v, want %v", data.ProductFrequency, wantProducts)
	}
}

func TestSpendingBreakdown_Empty(t *testing.T) {
	data := SpendingBreakdown(nil)
	if len(data.MonthlySpending) != 0 || len(data.CustomerSpending) != 0 || len(data.ProductFrequency) != 0 {
		t.Errorf("expected empty breakdowns, got %+v", data)
	}
}
