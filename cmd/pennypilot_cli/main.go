// Command pennypilot_cli is a terminal rendition of the dashboard: it logs
// in with a provider ID token, lists and mutates transactions, and renders
// totals and per-category nets in the chosen display currency.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/dashboard"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/pennypilot-app/pennypilot_backend/internal/session"
	"github.com/pennypilot-app/pennypilot_backend/pkg/client"
)

const usage = `Usage: pennypilot_cli [-backend URL] <command> [flags]

Commands:
  login -token <id-token>   store the provider ID token and decoded profile
  logout                    clear the stored session
  list [filter flags]       list transactions with totals and category nets
  add -type T -amount N -category C -date D [-note S]
  edit -id ID [field flags] update fields of a transaction
  rm -id ID                 delete a transaction
  currency -set CODE        choose the display currency
`

func main() {
	backend := flag.String("backend", "http://localhost:8080", "backend origin")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	dir, err := session.DefaultDir()
	if err != nil {
		fatal(err)
	}
	store, err := session.NewStore(dir)
	if err != nil {
		fatal(err)
	}
	sess, err := store.Load()
	if err != nil {
		fatal(err)
	}

	api := client.New(*backend, func() string { return sess.Token })
	api.OnUnauthorized = func() {
		// Session is over; clear it so the next run starts logged out.
		_ = store.Clear()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "login":
		err = runLogin(store, args)
	case "logout":
		err = store.Clear()
	case "list":
		err = runList(ctx, api, sess, args)
	case "add":
		err = runAdd(ctx, api, args)
	case "edit":
		err = runEdit(ctx, api, args)
	case "rm":
		err = runRemove(ctx, api, args)
	case "currency":
		err = runCurrency(store, args)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			fatal(fmt.Errorf("session expired, run 'pennypilot_cli login' again"))
		}
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func runLogin(store *session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "provider ID token")
	_ = fs.Parse(args)
	if *token == "" {
		return fmt.Errorf("login requires -token")
	}

	if err := store.SaveToken(*token); err != nil {
		return err
	}
	if profile, err := session.ProfileFromToken(*token); err == nil && profile.Name != "" {
		fmt.Printf("Logged in as %s <%s>\n", profile.Name, profile.Email)
	} else {
		fmt.Println("Logged in")
	}
	return nil
}

func runCurrency(store *session.Store, args []string) error {
	fs := flag.NewFlagSet("currency", flag.ExitOnError)
	code := fs.String("set", "", "display currency code, e.g. EUR")
	_ = fs.Parse(args)
	if *code == "" {
		return fmt.Errorf("currency requires -set CODE")
	}
	return store.SaveCurrency(*code)
}

// filterFlags installs the shared list filter flags on fs.
func filterFlags(fs *flag.FlagSet) (from, to, category, txnType, sort *string) {
	from = fs.String("from", "", "inclusive lower date bound (YYYY-MM-DD)")
	to = fs.String("to", "", "inclusive upper date bound (YYYY-MM-DD)")
	category = fs.String("category", "all", "category filter")
	txnType = fs.String("type", "all", "type filter (income|expense)")
	sort = fs.String("sort", "date_desc", "sort order")
	return
}

func runList(ctx context.Context, api *client.Client, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	from, to, category, txnType, sort := filterFlags(fs)
	_ = fs.Parse(args)

	filters := dashboard.Filters{
		From: *from,
		To:   *to,
		Sort: domain.ParseSortOrder(*sort),
	}
	if c := domain.Category(*category); c.IsValid() {
		filters.Category = &c
	}
	if t := domain.TransactionType(*txnType); t.IsValid() {
		filters.Type = &t
	}

	txns, err := api.ListTransactions(ctx, filters.Query())
	if err != nil {
		return err
	}

	if len(txns) == 0 {
		fmt.Println("No transactions.")
		return nil
	}

	// Rates are best effort: when the feed is down the table still renders,
	// converted values just show as unavailable.
	var table *domain.RateTable
	if rates, err := api.Rates(ctx); err == nil {
		table = &domain.RateTable{Base: rates.Base, Rates: rates.Rates}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\t"+sess.Currency+"\tNOTE\tID")
	for _, txn := range txns {
		converted := "unavailable"
		if v, ok := dashboard.ConvertMinor(txn.Amount, sess.Currency, table); ok {
			converted = v.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			txn.Date, txn.Type, txn.Category, float64(txn.Amount)/100, converted, txn.Note, txn.ID)
	}
	w.Flush()

	totals := dashboard.SumByType(txns)
	fmt.Printf("\nIncome: %.2f  Expense: %.2f  Net: %.2f\n",
		float64(totals.Income)/100, float64(totals.Expense)/100, float64(totals.Net)/100)

	fmt.Println("\nBy category:")
	for _, net := range dashboard.GroupByCategory(txns) {
		fmt.Printf("  %-10s %s\n", net.Category, net.Net.StringFixed(2))
	}
	return nil
}

func runAdd(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	txnType := fs.String("type", "expense", "income|expense")
	amount := fs.Int64("amount", -1, "amount in cents")
	category := fs.String("category", "", "category")
	note := fs.String("note", "", "note")
	date := fs.String("date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
	_ = fs.Parse(args)
	if *amount < 0 || *category == "" {
		return fmt.Errorf("add requires -amount and -category")
	}

	created, err := api.CreateTransaction(ctx, dto.CreateTransactionRequest{
		Type:     domain.TransactionType(*txnType),
		Amount:   amount,
		Category: domain.Category(*category),
		Note:     *note,
		Date:     *date,
	})
	if err != nil {
		return err
	}
	fmt.Println("Created", created.ID)
	return nil
}

func runEdit(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.String("id", "", "transaction ID")
	txnType := fs.String("type", "", "income|expense")
	amount := fs.Int64("amount", -1, "amount in cents")
	category := fs.String("category", "", "category")
	note := fs.String("note", "", "note")
	noteSet := false
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	_ = fs.Parse(args)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "note" {
			noteSet = true
		}
	})
	if *id == "" {
		return fmt.Errorf("edit requires -id")
	}

	req := dto.UpdateTransactionRequest{}
	if *txnType != "" {
		t := domain.TransactionType(*txnType)
		req.Type = &t
	}
	if *amount >= 0 {
		req.Amount = amount
	}
	if *category != "" {
		c := domain.Category(*category)
		req.Category = &c
	}
	if noteSet {
		req.Note = note
	}
	if *date != "" {
		req.Date = date
	}

	updated, err := api.UpdateTransaction(ctx, *id, req)
	if err != nil {
		return err
	}
	fmt.Println("Updated", updated.ID)
	return nil
}

func runRemove(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	id := fs.String("id", "", "transaction ID")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("rm requires -id")
	}
	if err := api.DeleteTransaction(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Deleted", *id)
	return nil
}
