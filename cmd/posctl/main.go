// posctl is the terminal companion for the shop API: sign in, browse sales,
// preview and print GST invoices, and serve the browser preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cellmart/pos-client/internal/config"
	"github.com/cellmart/pos-client/internal/gateway"
	"github.com/cellmart/pos-client/internal/invoice"
	"github.com/cellmart/pos-client/internal/preview"
	"github.com/cellmart/pos-client/internal/printsurface"
	"github.com/cellmart/pos-client/internal/session"
	"github.com/cellmart/pos-client/internal/store"
	"github.com/cellmart/pos-client/pkg/apperror"
	"github.com/cellmart/pos-client/pkg/escpos"
)

const usage = `Usage: posctl <command> [flags]

Commands:
  login     sign in and store the session
  logout    clear the stored session
  me        show the signed-in user
  sales     list recent sales
  invoice   show or print one sale's GST invoice
  history   show the local print journal
  serve     run the browser invoice preview server
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log := newLogger(cfg.Log.Level)

	creds := session.NewStore(cfg.Session.Path, cfg.Session.Passphrase)
	if err := creds.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load stored session")
	}

	client := gateway.NewClient(cfg.API.BaseURL, creds,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		gateway.WithListTTL(cfg.Cache.ListTTL),
		gateway.WithLogger(log),
		gateway.WithSessionExpiredHook(func() {
			fmt.Fprintln(os.Stderr, "Session expired, run `posctl login` again.")
		}),
	)

	app := &app{cfg: cfg, log: log, creds: creds, client: client}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "login":
		err = app.login(os.Args[2:])
	case "logout":
		err = app.logout()
	case "me":
		err = app.me()
	case "sales":
		err = app.sales(os.Args[2:])
	case "invoice":
		err = app.invoice(os.Args[2:])
	case "history":
		err = app.history(os.Args[2:])
	case "serve":
		err = app.serve()
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "posctl: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, apperror.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "Session expired, run `posctl login` again.")
		} else {
			fmt.Fprintf(os.Stderr, "posctl: %v\n", err)
		}
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	creds  *session.Store
	client *gateway.Client
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return errors.New("login requires -u and -p")
	}

	ctx := context.Background()
	if err := a.client.Login(ctx, *username, *password); err != nil {
		return err
	}

	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)

	if a.cfg.Warmup.Enabled {
		a.client.WarmUp(ctx, user)
	}
	return nil
}

func (a *app) logout() error {
	if err := a.client.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func (a *app) me() error {
	user, err := a.client.Me(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("User:  %s\nEmail: %s\nRole:  %s\n", user.Username, user.Email, user.Role)
	if user.ShopID != nil {
		fmt.Printf("Shop:  %d\n", *user.ShopID)
	}
	if tok := a.creds.Access(); tok != "" {
		if claims, err := session.ParseClaims(tok); err == nil && claims.ExpiresWithin(5*time.Minute) {
			fmt.Println("Note: session expires soon.")
		}
	}
	return nil
}

func (a *app) sales(args []string) error {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "search term")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := url.Values{}
	if *page > 1 {
		query.Set("page", fmt.Sprint(*page))
	}
	if *search != "" {
		query.Set("search", *search)
	}

	sales, pageInfo, err := a.client.ListSales(context.Background(), query)
	if err != nil {
		return err
	}

	for _, sale := range sales {
		fmt.Printf("%6d  %-16s  %s  %10s  %s\n",
			sale.ID, sale.InvoiceNo, sale.Date.Format("02/01/2006"),
			sale.GrandTotal.StringFixed(2), sale.CustomerName)
	}
	if pageInfo != nil {
		fmt.Printf("-- %d sales total\n", pageInfo.Count)
	}
	return nil
}

func (a *app) invoice(args []string) error {
	fs := flag.NewFlagSet("invoice", flag.ExitOnError)
	doPrint := fs.Bool("print", false, "send to the configured printer")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: posctl invoice [-print] <sale-id>")
	}
	var saleID int64
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &saleID); err != nil {
		return fmt.Errorf("invalid sale id %q", fs.Arg(0))
	}

	ctx := context.Background()
	loader := invoice.NewLoader(a.client, a.log)
	res := loader.Load(ctx, saleID)
	if res.State != invoice.StateReady {
		if res.SaleErr != nil {
			return fmt.Errorf("sale %d: %w", saleID, res.SaleErr)
		}
		return fmt.Errorf("sale %d not found", saleID)
	}

	text := printsurface.NewTextSurface(os.Stdout, a.cfg.Printer.Width)
	ctrl := invoice.NewController(text, a.log, invoice.WithSettleDelay(0))
	if err := ctrl.Print(ctx, res.Doc); err != nil {
		return err
	}

	if !*doPrint {
		return nil
	}

	transport, err := escpos.NewTransportFromConfig(
		a.cfg.Printer.Type, a.cfg.Printer.USBPath, a.cfg.Printer.Address)
	if err != nil {
		return err
	}
	thermal := printsurface.NewThermalSurface(transport, a.cfg.Printer.Width)
	printErr := invoice.NewController(thermal, a.log, invoice.WithSettleDelay(0)).Print(ctx, res.Doc)

	if journal, jerr := store.Open(a.cfg.Journal.Path); jerr != nil {
		a.log.Warn().Err(jerr).Msg("print journal unavailable")
	} else if rerr := journal.Record(ctx, saleID, res.Doc.InvoiceNo, thermal.Name(), printErr); rerr != nil {
		a.log.Warn().Err(rerr).Msg("journal write failed")
	}

	if printErr != nil {
		return printErr
	}
	fmt.Fprintf(os.Stderr, "Printed %s on %s.\n", res.Doc.InvoiceNo, thermal.Name())
	return nil
}

func (a *app) history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 20, "number of entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	journal, err := store.Open(a.cfg.Journal.Path)
	if err != nil {
		return err
	}
	records, err := journal.Recent(context.Background(), *limit)
	if err != nil {
		return err
	}

	for _, rec := range records {
		line := fmt.Sprintf("%s  %-16s  %-8s  %s",
			rec.CreatedAt.Format("02/01 15:04"), rec.InvoiceNo, rec.Surface, rec.Status)
		if rec.Error != "" {
			line += "  (" + rec.Error + ")"
		}
		fmt.Println(line)
	}
	return nil
}

func (a *app) serve() error {
	journal, err := store.Open(a.cfg.Journal.Path)
	if err != nil {
		return err
	}

	transport, err := escpos.NewTransportFromConfig(
		a.cfg.Printer.Type, a.cfg.Printer.USBPath, a.cfg.Printer.Address)
	if err != nil {
		return err
	}
	thermal := printsurface.NewThermalSurface(transport, a.cfg.Printer.Width)

	loader := invoice.NewLoader(a.client, a.log)
	srv := preview.NewServer(loader, thermal, journal, a.log,
		preview.WithAllowedOrigins(a.cfg.Preview.AllowedOrigins),
		preview.WithAutoPrintDelay(a.cfg.Preview.AutoPrintDelay),
	)

	a.log.Info().Str("addr", a.cfg.Preview.Addr).Msg("preview server listening")
	return srv.Router().Run(a.cfg.Preview.Addr)
}
