package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/export"
	"github.com/mamadbah2/procurement-mock/internal/service/reporting"
	client "github.com/mamadbah2/procurement-mock/pkg/clients/procurement"
	"github.com/mamadbah2/procurement-mock/pkg/logger"
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the procurement mock")
		limit       = flag.Int("limit", 100, "Page size requested per call (1-1000)")
		offset      = flag.Int("offset", 0, "Starting offset")
		maxRecords  = flag.Int("max", 100, "Maximum number of records to collect across pages")
		supplier    = flag.String("supplier", "", "Filter by supplier id")
		status      = flag.String("status", "", "Filter by status (Released, Pending, Approved)")
		companyCode = flag.String("company", "", "Filter by company code (generic variant only)")
		startDate   = flag.String("start", "", "Created date lower bound, YYYY-MM-DD")
		endDate     = flag.String("end", "", "Created date upper bound, YYYY-MM-DD")
		format      = flag.String("format", "json", "Output format: json or xlsx")
		outPath     = flag.String("out", "", "Output file (stdout when empty; required for xlsx)")
		summary     = flag.Bool("summary", false, "Print a digest of the fetched records to stderr")
		timeout     = flag.Duration("timeout", 30*time.Second, "Per-request timeout")
	)
	flag.Parse()

	if *format != "json" && *format != "xlsx" {
		fmt.Fprintln(os.Stderr, "Usage: pofetch -format json|xlsx [-out file]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *format == "xlsx" && *outPath == "" {
		fmt.Fprintln(os.Stderr, "pofetch: -out is required for xlsx output")
		os.Exit(1)
	}

	log := logger.Must(logger.New("info"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.NewClient(*baseURL, *timeout)
	orders, err := client.ListAll(ctx, api, client.ListRequest{
		StartDate:   *startDate,
		EndDate:     *endDate,
		CompanyCode: *companyCode,
		Supplier:    *supplier,
		Status:      *status,
		Limit:       *limit,
		Offset:      *offset,
	}, *maxRecords)
	if err != nil {
		log.Fatal("failed fetching purchase orders", zap.Error(err), zap.Int("collected", len(orders)))
	}
	log.Info("purchase orders fetched", zap.Int("records", len(orders)), zap.String("url", *baseURL))

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal("failed creating output file", zap.String("path", *outPath), zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "xlsx":
		err = export.WriteXLSX(out, orders)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(orders)
	}
	if err != nil {
		log.Fatal("failed writing output", zap.String("format", *format), zap.Error(err))
	}

	if *summary {
		fmt.Fprintln(os.Stderr, reporting.Format(reporting.Summarize("remote", orders)))
	}
}
