package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/vaughan0/go-ini"

	"github.com/cespare/advent/dial"
	"github.com/cespare/advent/report"
	"github.com/cespare/advent/source"
)

// A config is assembled from defaults, an optional INI file, and flags,
// in increasing order of precedence.
//
// The INI file looks like this (every key is optional):
//
//	[dial]
//	size = 100
//	start = 50
//
//	[input]
//	source = s3://bucket/day1.txt
//	table = input_rotations
//
//	[aws]
//	region = us-east-1
//	credentials = /home/me/.aws/credentials
//	profile = default
//
//	[report]
//	format = text
//	sample = 20
//	zeros = 20
type config struct {
	dial    dial.Dial
	input   string
	table   string
	aws     awsConfig
	format  report.Format
	report  report.Options
	verbose bool
	profile string
}

type awsConfig struct {
	region      string
	credentials string
	profile     string
}

func defaultConfig() *config {
	return &config{
		dial:   dial.Default,
		input:  "-",
		table:  source.DefaultTable,
		aws:    awsConfig{profile: "default"},
		format: report.Text,
		report: report.DefaultOptions,
	}
}

func (c *config) applyINI(f ini.File) error {
	ints := []struct {
		section, key string
		p            *int
	}{
		{"dial", "size", &c.dial.Size},
		{"dial", "start", &c.dial.Start},
		{"report", "sample", &c.report.Sample},
		{"report", "zeros", &c.report.Zeros},
	}
	for _, n := range ints {
		v, ok := f.Get(n.section, n.key)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("[%s] %s: bad integer %q", n.section, n.key, v)
		}
		*n.p = i
	}
	strs := []struct {
		section, key string
		p            *string
	}{
		{"input", "source", &c.input},
		{"input", "table", &c.table},
		{"aws", "region", &c.aws.region},
		{"aws", "credentials", &c.aws.credentials},
		{"aws", "profile", &c.aws.profile},
	}
	for _, s := range strs {
		if v, ok := f.Get(s.section, s.key); ok {
			*s.p = v
		}
	}
	if v, ok := f.Get("report", "format"); ok {
		format, err := report.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("[report] format: %s", err)
		}
		c.format = format
	}
	return nil
}

func (c *config) validate() error {
	if c.dial.Size <= 0 {
		return fmt.Errorf("dial size must be positive; got %d", c.dial.Size)
	}
	if c.dial.Start < 0 || c.dial.Start >= c.dial.Size {
		return fmt.Errorf("start position %d is outside the dial [0, %d)", c.dial.Start, c.dial.Size)
	}
	if c.report.Sample < 0 || c.report.Zeros < 0 {
		return errors.New("sample and zeros must not be negative")
	}
	if c.input == "" {
		return errors.New("no input source")
	}
	return nil
}

// parseConfig parses the flags of the named solution. A single positional
// argument, if present, is the input source.
func parseConfig(name string, args []string) (*config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "INI config `file`")
		input      = fs.String("input", "-", "input: a file, - for stdin, s3://bucket/key, postgres://..., or sqlite:path")
		table      = fs.String("table", source.DefaultTable, "instruction table for SQL inputs")
		size       = fs.Int("size", dial.Default.Size, "number of positions on the dial")
		start      = fs.Int("start", dial.Default.Start, "starting position")
		format     = fs.String("format", string(report.Text), "output format: text, markdown, html, yaml, or pretty")
		sample     = fs.Int("sample", report.DefaultOptions.Sample, "number of rotations in the sample table")
		zeros      = fs.Int("zeros", report.DefaultOptions.Zeros, "maximum number of zero rotations to list")
		verbose    = fs.Bool("v", false, "log progress to stderr")
		profile    = fs.String("profile", "", "write a wall-clock profile to `file`")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%s: at most one input may be given", name)
	}

	cfg := defaultConfig()
	if *configFile != "" {
		f, err := ini.LoadFile(*configFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config (%s): %s", *configFile, err)
		}
		if err := cfg.applyINI(f); err != nil {
			return nil, fmt.Errorf("%s: %s", *configFile, err)
		}
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "input":
			cfg.input = *input
		case "table":
			cfg.table = *table
		case "size":
			cfg.dial.Size = *size
		case "start":
			cfg.dial.Start = *start
		case "format":
			cfg.format, err = report.ParseFormat(*format)
		case "sample":
			cfg.report.Sample = *sample
		case "zeros":
			cfg.report.Zeros = *zeros
		}
	})
	if err != nil {
		return nil, err
	}
	if fs.NArg() == 1 {
		cfg.input = fs.Arg(0)
	}
	cfg.verbose = *verbose
	cfg.profile = *profile
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sharedRegion reads the region for profile from an AWS shared config
// file such as ~/.aws/config.
func sharedRegion(configFile, profile string) (string, error) {
	f, err := ini.LoadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("error loading aws config (%s): %s", configFile, err)
	}
	section := "default"
	if profile != "" && profile != "default" {
		section = "profile " + profile
	}
	return f.Section(section)["region"], nil
}
