package internal

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultTopK is how many descriptions back the fallback context answer.
const defaultTopK = 3

const helpText = `I can help you with:
• Customer spending totals (e.g., "What was Amit's total spending?")
• Purchase history (e.g., "Show me Riya's purchases")
• Average order amounts
• Most popular products
• Monthly transactions
• List all customers
Try asking me anything about the transaction data!`

// monthNumbers maps month names to the two-digit month, in calendar order.
// The year is fixed to 2024: the data set covers a single year and questions
// carry no year, so other years are undefined.
var monthNumbers = []struct {
	name string
	num  string
}{
	{"january", "01"}, {"february", "02"}, {"march", "03"},
	{"april", "04"}, {"may", "05"}, {"june", "06"},
	{"july", "07"}, {"august", "08"}, {"september", "09"},
	{"october", "10"}, {"november", "11"}, {"december", "12"},
}

// rule pairs a keyword predicate with a handler. Rules are evaluated in
// order and the first whose predicate matches wins; a matching handler that
// declines (ok=false) sends the question straight to the retrieval-context
// answer, not to later rules.
type rule struct {
	match  func(q string) bool
	answer func(b *Chatbot, q string) (string, bool)
}

var rules = []rule{
	{matchAny("total spending", "total spent"), (*Chatbot).totalSpendingAnswer},
	{matchAny("purchase history", "transactions"), (*Chatbot).purchaseHistoryAnswer},
	{matchAll("average", "order"), (*Chatbot).averageOrderAnswer},
	{func(q string) bool {
		return strings.Contains(q, "most") &&
			(strings.Contains(q, "purchased") || strings.Contains(q, "popular"))
	}, (*Chatbot).mostPurchasedAnswer},
	{matchAny("month"), (*Chatbot).monthAnswer},
	{matchAny("list customers", "all customers"), (*Chatbot).listCustomersAnswer},
	{matchAny("help"), (*Chatbot).helpAnswer},
}

func matchAny(keywords ...string) func(q string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
}

func matchAll(keywords ...string) func(q string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if !strings.Contains(q, kw) {
				return false
			}
		}
		return true
	}
}

// Process answers a question. Every question terminates in a textual answer;
// unmatched or malformed questions fall back to retrieved context.
func (b *Chatbot) Process(question string) string {
	q := strings.ToLower(question)
	for _, r := range rules {
		if !r.match(q) {
			continue
		}
		if answer, ok := r.answer(b, q); ok {
			return answer
		}
		break
	}
	return b.contextAnswer(question)
}

// findCustomer returns the first known customer whose name appears in the
// lower-cased question.
func (b *Chatbot) findCustomer(q string) (string, bool) {
	for _, customer := range AllCustomers(b.store.All()) {
		if strings.Contains(q, strings.ToLower(customer)) {
			return customer, true
		}
	}
	return "", false
}

// possessiveName picks a name out of a possessive token like "riya's" so
// questions about customers with no recorded purchases still get a direct
// answer. Known customers always take precedence.
func possessiveName(q string) (string, bool) {
	for _, word := range strings.Fields(q) {
		word = strings.Trim(word, ".,!?")
		if name, found := strings.CutSuffix(word, "'s"); found && name != "" {
			return name, true
		}
	}
	return "", false
}

func (b *Chatbot) totalSpendingAnswer(q string) (string, bool) {
	customer, found := b.findCustomer(q)
	if !found {
		return "Please specify which customer's total spending you want to know.", true
	}
	total := TotalSpending(b.store.All(), customer)
	return fmt.Sprintf("%s spent a total of %s.", titleCase(customer), b.currency.Format(total)), true
}

func (b *Chatbot) purchaseHistoryAnswer(q string) (string, bool) {
	customer, found := b.findCustomer(q)
	if !found {
		customer, found = possessiveName(q)
	}
	if !found {
		return "Please specify which customer's purchase history you want to see.", true
	}

	transactions := TransactionsFor(b.store.All(), customer)
	if len(transactions) == 0 {
		return fmt.Sprintf("No transactions found for %s.", titleCase(customer)), true
	}

	purchases := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		purchases = append(purchases, fmt.Sprintf("a %s for %s on %s",
			tx.Product, b.currency.Format(tx.Amount), tx.Date))
	}
	return fmt.Sprintf("%s made %d purchases: %s.",
		titleCase(customer), len(transactions), strings.Join(purchases, " and ")), true
}

func (b *Chatbot) averageOrderAnswer(q string) (string, bool) {
	avg := AverageOrderAmount(b.store.All())
	return fmt.Sprintf("The average order amount is %s.", b.currency.FormatExact(avg)), true
}

func (b *Chatbot) mostPurchasedAnswer(q string) (string, bool) {
	product := MostPurchasedProduct(b.store.All())
	return fmt.Sprintf("The most frequently purchased product is %s.", product), true
}

func (b *Chatbot) monthAnswer(q string) (string, bool) {
	for _, month := range monthNumbers {
		if !strings.Contains(q, month.name) {
			continue
		}
		transactions := TransactionsForMonth(b.store.All(), "2024-"+month.num)
		if len(transactions) == 0 {
			return fmt.Sprintf("No transactions found for %s 2024.", titleCase(month.name)), true
		}
		entries := make([]string, 0, len(transactions))
		for _, tx := range transactions {
			entries = append(entries, fmt.Sprintf("%s bought %s for %s",
				tx.Customer, tx.Product, b.currency.Format(tx.Amount)))
		}
		return fmt.Sprintf("Transactions for %s 2024: %s.",
			titleCase(month.name), strings.Join(entries, ", ")), true
	}
	// "month" without a recognizable month name
	return "", false
}

func (b *Chatbot) listCustomersAnswer(q string) (string, bool) {
	customers := AllCustomers(b.store.All())
	return fmt.Sprintf("We have %d customers: %s.",
		len(customers), strings.Join(customers, ", ")), true
}

func (b *Chatbot) helpAnswer(q string) (string, bool) {
	return helpText, true
}

// contextAnswer is the default path: answer from retrieved descriptions, or
// describe the bot's capabilities when there is no data at all.
func (b *Chatbot) contextAnswer(question string) string {
	hits := b.Retrieve(question, defaultTopK)
	if len(hits) == 0 {
		return "I can help you analyze transaction data. You can ask about customer spending, " +
			"purchase history, average orders, or popular products. Try 'help' for more options."
	}

	texts := make([]string, 0, len(hits))
	for _, hit := range hits {
		texts = append(texts, hit.Text)
	}
	return fmt.Sprintf("Based on the transaction data:\n\n%s\n\nIs there anything specific you'd like to know about these transactions?",
		strings.Join(texts, "\n"))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
