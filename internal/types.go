package internal

// Transaction is a single purchase record. Records are identified by their
// position in the loaded sequence; there is no separate ID field.
type Transaction struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Customer string  `json:"customer"`
	Product  string  `json:"product"`
	Amount   float64 `json:"amount"`
}

// RetrievalHit is a scored (description, transaction) pair returned by retrieval.
type RetrievalHit struct {
	Text        string
	Transaction Transaction
	Score       float64
}

// Stats is the aggregate snapshot exposed alongside every answer.
type Stats struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrder      float64 `json:"avg_order"`
	PopularProduct    string  `json:"popular_product"`
}

// MonthAmount is total spending for one calendar month.
type MonthAmount struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// CustomerAmount is total spending for one customer.
type CustomerAmount struct {
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
}

// ProductCount is the number of times one product was purchased.
type ProductCount struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

// ChartData holds the three spending breakdowns, each in first-seen-key order.
type ChartData struct {
	MonthlySpending  []MonthAmount    `json:"monthly_spending"`
	CustomerSpending []CustomerAmount `json:"customer_spending"`
	ProductFrequency []ProductCount   `json:"product_frequency"`
}
