package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	plurals "github.com/goliatone/go-plurals"
)

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("plural-inspect", flag.ContinueOnError)

	var locales localeFlag
	fs.Var(&locales, "locale", "locale code to inspect, repeatable or comma separated (default: all)")
	counts := fs.String("counts", "0,1,2,3,5,11,21,100,101", "comma separated counts to classify")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sample, err := parseCounts(*counts)
	if err != nil {
		return err
	}

	codes := locales.items
	if len(codes) == 0 {
		codes = plurals.Locales()
	}

	for _, locale := range codes {
		forms, err := plurals.FormCount(locale)
		if err != nil {
			return err
		}

		indices := make([]string, 0, len(sample))
		for _, n := range sample {
			idx, err := plurals.FormIndex(locale, n)
			if err != nil {
				return err
			}
			indices = append(indices, fmt.Sprintf("%d:%d", n, idx))
		}

		fmt.Printf("%-8s forms=%d  %s\n", locale, forms, strings.Join(indices, " "))
	}

	return nil
}

func parseCounts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: %w", part, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no counts supplied")
	}
	return out, nil
}
