package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/vkhare/purchase-chatbot/internal"
)

type Params struct {
	File     string `descr:"Path to the transactions file, optionally prefixed with a format (e.g. xlsx:sales.xlsx)" positional:"true"`
	Source   string `descr:"Data source type" alts:"json,xlsx"`
	Currency string `descr:"ISO currency code for rendered amounts"`
	Ask      string `descr:"Answer a single question and exit"`
	Serve    bool   `descr:"Start the HTTP question-answering server"`
	Addr     string `descr:"HTTP listen address for --serve"`
	Static   string `descr:"Directory served as the web UI in --serve mode"`
	Config   string `descr:"Path to the config file"`
	JSON     bool   `descr:"Print the stats snapshot as JSON instead of tables"`
}

func main() {
	boa.NewCmdT[Params]("purchase-chatbot").
		WithShort("Answer questions about purchase transactions").
		WithLong("Loads a purchase transaction file and answers natural-language questions about it: customer spending totals, purchase history, averages, popular products and monthly activity, with lexical retrieval as the fallback. Can answer one question, print a stats snapshot, or serve HTTP.").
		WithRunFunc(func(params *Params) {
			cfg := loadConfig(params.Config)
			applyOverrides(cfg, params)

			currency := internal.GetCurrency(cfg.Currency)

			format, path := internal.ParseFileArg(cfg.DataFile)
			if format == "" {
				format = cfg.Source
			}
			parser, err := internal.GetParser(format)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			store := internal.NewStore(currency)
			if err := store.Load(path, parser); err != nil {
				fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
				os.Exit(1)
			}

			bot := internal.NewChatbot(store, currency)

			switch {
			case params.Ask != "":
				fmt.Println(bot.Process(params.Ask))
			case params.Serve:
				if err := internal.Serve(cfg.Addr, bot, cfg.StaticDir); err != nil {
					fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
					os.Exit(1)
				}
			case params.JSON:
				if err := internal.PrintSnapshotJSON(os.Stdout, bot); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			default:
				internal.PrintSnapshotTables(os.Stdout, bot, currency)
				runPrompt(bot)
			}
		}).
		Run()
}

// loadConfig reads the given (or default) config file, falling back to
// defaults when none exists.
func loadConfig(path string) *internal.Config {
	explicit := path != ""
	if path == "" {
		path = internal.DefaultConfigPath()
	}
	if path == "" {
		return internal.NewDefaultConfig()
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		if explicit {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return internal.NewDefaultConfig()
	}
	return cfg
}

func applyOverrides(cfg *internal.Config, params *Params) {
	if params.File != "" {
		cfg.DataFile = params.File
	}
	if params.Source != "" {
		cfg.Source = params.Source
	}
	if params.Currency != "" {
		cfg.Currency = params.Currency
	}
	if params.Addr != "" {
		cfg.Addr = params.Addr
	}
	if params.Static != "" {
		cfg.StaticDir = params.Static
	}
	if cfg.Source == "" {
		cfg.Source = "json"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
}

// runPrompt answers questions from stdin until EOF.
func runPrompt(bot *internal.Chatbot) {
	fmt.Println("Ask a question (Ctrl-D to quit):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		fmt.Println(bot.Process(question))
	}
	fmt.Println()
}
