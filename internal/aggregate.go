package internal

import "strings"

// Aggregations are pure reads over the transaction sequence, recomputed per
// call. The store never changes after load, so there is nothing to cache or
// invalidate.

// TotalSpending sums the amounts of all transactions for a customer
// (case-insensitive full-name match).
func TotalSpending(transactions []Transaction, customer string) float64 {
	var total float64
	for _, tx := range TransactionsFor(transactions, customer) {
		total += tx.Amount
	}
	return total
}

// TransactionsFor returns all transactions for a customer, matched
// case-insensitively on the full name.
func TransactionsFor(transactions []Transaction, customer string) []Transaction {
	var matched []Transaction
	for _, tx := range transactions {
		if strings.EqualFold(tx.Customer, customer) {
			matched = append(matched, tx)
		}
	}
	return matched
}

// TransactionsForMonth returns all transactions whose date starts with the
// given "YYYY-MM" prefix.
func TransactionsForMonth(transactions []Transaction, yearMonth string) []Transaction {
	var matched []Transaction
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, yearMonth) {
			matched = append(matched, tx)
		}
	}
	return matched
}

// AverageOrderAmount returns the mean transaction amount, or 0 when there are
// no transactions.
func AverageOrderAmount(transactions []Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	var total float64
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total / float64(len(transactions))
}

// MostPurchasedProduct returns the product with the highest purchase count.
// Ties go to the product first seen in transaction order, which keeps the
// result reproducible.
func MostPurchasedProduct(transactions []Transaction) string {
	if len(transactions) == 0 {
		return "No products"
	}

	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		if _, seen := counts[tx.Product]; !seen {
			order = append(order, tx.Product)
		}
		counts[tx.Product]++
	}

	best := ""
	bestCount := 0
	for _, product := range order {
		if counts[product] > bestCount {
			best = product
			bestCount = counts[product]
		}
	}
	return best
}

// AllCustomers returns the distinct customer names (case-sensitive
// uniqueness) in first-seen order. Callers should not rely on the ordering.
func AllCustomers(transactions []Transaction) []string {
	seen := make(map[string]bool)
	var customers []string
	for _, tx := range transactions {
		if !seen[tx.Customer] {
			seen[tx.Customer] = true
			customers = append(customers, tx.Customer)
		}
	}
	return customers
}

// SpendingBreakdown groups spending by month and customer and purchase counts
// by product, each breakdown keyed in first-seen order.
func SpendingBreakdown(transactions []Transaction) ChartData {
	monthTotals := make(map[string]float64)
	var months []string
	customerTotals := make(map[string]float64)
	var customers []string
	productCounts := make(map[string]int)
	var products []string

	for _, tx := range transactions {
		month := tx.Date
		if len(month) > 7 {
			month = month[:7] // YYYY-MM
		}
		if _, seen := monthTotals[month]; !seen {
			months = append(months, month)
		}
		monthTotals[month] += tx.Amount

		if _, seen := customerTotals[tx.Customer]; !seen {
			customers = append(customers, tx.Customer)
		}
		customerTotals[tx.Customer] += tx.Amount

		if _, seen := productCounts[tx.Product]; !seen {
			products = append(products, tx.Product)
		}
		productCounts[tx.Product]++
	}

	data := ChartData{}
	for _, m := range months {
		data.MonthlySpending = append(data.MonthlySpending, MonthAmount{Month: m, Amount: monthTotals[m]})
	}
	for _, c := range customers {
		data.CustomerSpending = append(data.CustomerSpending, CustomerAmount{Customer: c, Amount: customerTotals[c]})
	}
	for _, p := range products {
		data.ProductFrequency = append(data.ProductFrequency, ProductCount{Product: p, Count: productCounts[p]})
	}
	return data
}
