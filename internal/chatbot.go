package internal

// Chatbot answers natural-language questions about the loaded transactions.
// Construct one explicitly and pass it to whatever boundary serves questions;
// after the initial load it only reads, so concurrent Process calls are safe.
type Chatbot struct {
	store    *Store
	currency Currency
}

func NewChatbot(store *Store, currency Currency) *Chatbot {
	return &Chatbot{store: store, currency: currency}
}

// Retrieve returns the top-k most similar transaction descriptions.
func (b *Chatbot) Retrieve(query string, k int) []RetrievalHit {
	return Retrieve(b.store.All(), b.store.Descriptions(), query, k)
}

// Stats returns the aggregate snapshot of the loaded data.
func (b *Chatbot) Stats() Stats {
	transactions := b.store.All()
	var revenue float64
	for _, tx := range transactions {
		revenue += tx.Amount
	}
	return Stats{
		TotalTransactions: len(transactions),
		TotalRevenue:      revenue,
		AverageOrder:      AverageOrderAmount(transactions),
		PopularProduct:    MostPurchasedProduct(transactions),
	}
}

// Charts returns the spending breakdowns for chart rendering.
func (b *Chatbot) Charts() ChartData {
	return SpendingBreakdown(b.store.All())
}
