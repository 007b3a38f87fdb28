// Command fontreach reports the words that reach highest and lowest in a
// font, across the interesting points of its design space.
//
// Usage:
//
//	fontreach [flags] font.ttf [font2.ttf ...]
//
// Each font is checked against every built-in word list plus any lists
// given with -wordlist, at every interesting design-space location.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fontreach/fontreach"
	"github.com/fontreach/fontreach/wordlists"
)

type listFlag []string

func (f *listFlag) String() string { return strings.Join(*f, ",") }

func (f *listFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		exemplars = flag.Int("n", fontreach.DefaultExemplars,
			"number of lowest and highest words to report per list")
		maxWords = flag.Int("k", 0,
			"cap words checked per list (0 = all)")
		workers = flag.Int("workers", 0,
			"shaping goroutines per check (0 = GOMAXPROCS)")
		format = flag.String("format", "human",
			"output format: human or json")
		verbose = flag.Bool("v", false,
			"enable debug logging")
		extraLists listFlag
	)
	flag.Var(&extraLists, "wordlist",
		"extra word list file to check (repeatable)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: fontreach [flags] font.ttf [font2.ttf ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *format != "human" && *format != "json" {
		fmt.Fprintf(os.Stderr, "fontreach: unknown format %q\n", *format)
		os.Exit(2)
	}
	if *exemplars < 1 {
		fmt.Fprintln(os.Stderr, "fontreach: -n must be >= 1")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontreach.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	lists := wordlists.All()
	for _, path := range extraLists {
		list, err := wordlists.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fontreach: %v\n", err)
			os.Exit(1)
		}
		lists = append(lists, list)
	}

	for _, fontPath := range flag.Args() {
		if err := checkFont(ctx, fontPath, lists, *exemplars, *maxWords, *workers, *format); err != nil {
			fmt.Fprintf(os.Stderr, "fontreach: %s: %v\n", fontPath, err)
			os.Exit(1)
		}
	}
}

func checkFont(ctx context.Context, path string, lists []*wordlists.WordList,
	exemplars, maxWords, workers int, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rep, err := fontreach.NewReporter(data)
	if err != nil {
		return err
	}

	locations := rep.InterestingLocations()
	if len(locations) >= 100 && maxWords == 0 {
		slog.Warn("checking many locations with uncapped word lists; this may take a while",
			"font", path, "locations", len(locations))
	}

	opts := []fontreach.CheckOption{
		fontreach.WithExemplars(exemplars),
		fontreach.WithMaxWords(maxWords),
		fontreach.WithWorkers(workers),
	}

	enc := json.NewEncoder(os.Stdout)
	for _, loc := range locations {
		inst, err := rep.Instance(loc)
		if err != nil {
			return err
		}
		for _, list := range lists {
			report, err := inst.ParCheck(ctx, list, opts...)
			if err != nil {
				return err
			}
			if report.IsEmpty() {
				continue
			}
			switch format {
			case "json":
				if err := enc.Encode(report); err != nil {
					return err
				}
			default:
				fmt.Print(report)
			}
		}
	}
	return nil
}
