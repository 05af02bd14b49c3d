package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Snapshot is the full machine-readable view of the loaded data, mirroring
// what the HTTP layer attaches to every answer.
type Snapshot struct {
	Stats  Stats     `json:"stats"`
	Charts ChartData `json:"charts"`
}

// PrintSnapshotJSON writes the stats and chart snapshot as indented JSON.
func PrintSnapshotJSON(w io.Writer, bot *Chatbot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot{Stats: bot.Stats(), Charts: bot.Charts()})
}

// PrintSnapshotTables renders the stats summary and the three spending
// breakdowns as tables.
func PrintSnapshotTables(w io.Writer, bot *Chatbot, currency Currency) {
	stats := bot.Stats()
	charts := bot.Charts()

	fmt.Fprintf(w, "Loaded %d transactions, total revenue %s\n",
		stats.TotalTransactions, currency.Format(stats.TotalRevenue))
	fmt.Fprintf(w, "Average order: %s\n", currency.FormatExact(stats.AverageOrder))
	fmt.Fprintf(w, "Most purchased product: %s\n\n", stats.PopularProduct)

	monthly := table.NewWriter()
	monthly.SetOutputMirror(w)
	monthly.AppendHeader(table.Row{"Month", "Spending"})
	for _, m := range charts.MonthlySpending {
		monthly.AppendRow(table.Row{m.Month, currency.Format(m.Amount)})
	}
	renderBreakdown(monthly)

	customers := table.NewWriter()
	customers.SetOutputMirror(w)
	customers.AppendHeader(table.Row{"Customer", "Spending"})
	for _, c := range charts.CustomerSpending {
		customers.AppendRow(table.Row{c.Customer, currency.Format(c.Amount)})
	}
	renderBreakdown(customers)

	products := table.NewWriter()
	products.SetOutputMirror(w)
	products.AppendHeader(table.Row{"Product", "Purchases"})
	for _, p := range charts.ProductFrequency {
		products.AppendRow(table.Row{p.Product, p.Count})
	}
	renderBreakdown(products)
}

func renderBreakdown(t table.Writer) {
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}
