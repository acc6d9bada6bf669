package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/felixge/fgprof"

	"github.com/cespare/advent/dial"
	"github.com/cespare/advent/report"
	"github.com/cespare/advent/source"
)

func init() {
	register("1a", "dial: count rotations that end on 0", day1a)
	register("1b", "dial: count every click that lands on 0", day1b)
	register("1load", "import a dial input file into a SQL table", day1load)
}

func day1a(name string, args []string) error {
	return solveDial(name, args, dial.EndpointOnly)
}

func day1b(name string, args []string) error {
	return solveDial(name, args, dial.EveryClick)
}

func solveDial(name string, args []string, mode dial.Mode) (err error) {
	cfg, err := parseConfig(name, args)
	if err != nil {
		return err
	}
	if cfg.profile != "" {
		f, ferr := os.Create(cfg.profile)
		if ferr != nil {
			return ferr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err == nil {
				err = err1
			}
			if err1 := f.Close(); err == nil {
				err = err1
			}
		}()
	}
	return runDial(context.Background(), cfg, mode, os.Stdout)
}

func runDial(ctx context.Context, cfg *config, mode dial.Mode, w io.Writer) error {
	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	insns, err := src.Instructions(ctx)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("read %d instructions from %s", len(insns), cfg.input)
	}
	res := cfg.dial.Run(insns, mode)
	if cfg.verbose {
		log.Printf("%s: %d crossings, final position %d", mode, res.Total, res.Final)
	}
	return report.Write(w, cfg.format, res, cfg.report)
}

func day1load(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	db := fs.String("db", "", "destination: postgres://... or sqlite:path")
	table := fs.String("table", source.DefaultTable, "destination table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *db == "" || fs.NArg() > 1 {
		return fmt.Errorf("usage: %s -db dsn [-table name] [file]", name)
	}
	input := "-"
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}
	n, err := loadTable(context.Background(), input, *db, *table)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d instructions into %s\n", n, *table)
	return nil
}

// loadTable validates the instructions in input before importing them,
// so a malformed file never produces a partial table.
func loadTable(ctx context.Context, input, dsn, table string) (int, error) {
	r := io.Reader(os.Stdin)
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}
	lines, err := source.ReadLines(r)
	if err != nil {
		return 0, err
	}
	if _, err := source.ParseLines(lines); err != nil {
		return 0, fmt.Errorf("%s: %w", input, err)
	}
	db, err := openDB(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return source.Import(ctx, db, table, lines)
}
