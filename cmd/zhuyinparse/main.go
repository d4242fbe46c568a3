// zhuyinparse segments lines of raw keyboard input into phonetic keys.
//
// Every input line produces one output line with four tab-separated
// fields: the keys decoded, the spans of input they have been decoded from,
// the number of bytes consumed, and the unconsumed rest of the line.
// If stdin is a terminal, lines are parsed as they are typed.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/internal/config"
	"github.com/npillmayer/zhuyin/parser"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintln(w, `zhuyinparse - segment keyboard input into Zhuyin keys

Usage: zhuyinparse [options] [file ...]

Reads lines from the files given, or from stdin, and prints for every line:
keys, spans, bytes consumed and the unconsumed rest.

Options:`)
		fs.PrintDefaults()
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zhuyinparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs, stderr)
	var (
		configPath = fs.String("config", "", "path to config file (TOML)")
		scheme     = fs.String("scheme", "", "keyboard scheme, see -list")
		tone       = fs.Bool("tone", true, "interpret tone keys")
		forceTone  = fs.Bool("force-tone", false, "every key has to carry a tone")
		incomplete = fs.Bool("incomplete", false, "accept initials without a rime")
		workers    = fs.Int("workers", 0, "number of concurrent parsers")
		trace      = fs.String("trace", "", "trace level: debug, info or error")
		dumpConfig = fs.Bool("dump-config", false, "print the effective configuration and exit")
		list       = fs.Bool("list", false, "list keyboard schemes and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *list {
		for _, s := range zhuyin.Schemes() {
			fmt.Fprintln(stdout, s)
		}
		return 0
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
		return 1
	}
	if *scheme != "" {
		cfg.Scheme = *scheme
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *trace != "" {
		cfg.TraceLevel = *trace
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tone" {
			cfg.SetOption("use_tone", *tone)
		}
	})
	if *forceTone {
		cfg.Options = append(cfg.Options, "use_tone", "force_tone")
	}
	if *incomplete {
		cfg.Options = append(cfg.Options, "zhuyin_incomplete", "pinyin_incomplete")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
		return 2
	}
	if *dumpConfig {
		if err := cfg.Dump(stdout); err != nil {
			fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
			return 1
		}
		return 0
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.Level())
	//
	if len(fs.Args()) == 0 && isTerminal(stdin) {
		if err := interactive(cfg, stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
			return 1
		}
		return 0
	}
	lines, err := readLines(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
		return 1
	}
	results, err := parseLines(context.Background(), cfg, lines)
	if err != nil {
		fmt.Fprintf(stderr, "zhuyinparse: %v\n", err)
		return 1
	}
	w := bufio.NewWriter(stdout)
	defer w.Flush()
	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	return 0
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// interactive parses every line as soon as it has been entered.
func interactive(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	p := parser.New()
	p.Configure(cfg.KeyboardScheme())
	opts := cfg.ParseOptions()
	fmt.Fprintf(stdout, "%s> ", p.Scheme())
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		keys, spans, n := p.Parse(opts, line)
		fmt.Fprintln(stdout, format(line, keys, spans, n))
		fmt.Fprintf(stdout, "%s> ", p.Scheme())
	}
	fmt.Fprintln(stdout)
	return scanner.Err()
}

func readLines(files []string, stdin io.Reader) ([]string, error) {
	if len(files) == 0 {
		return scanLines(stdin)
	}
	var lines []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		l, err := scanLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		lines = append(lines, l...)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// parseLines parses lines concurrently with a pool of parsers and returns
// the formatted results in input order.
func parseLines(ctx context.Context, cfg *config.Config, lines []string) ([]string, error) {
	pool := parser.NewPool(ctx, cfg.KeyboardScheme(), cfg.Workers)
	defer pool.Close(ctx)
	opts := cfg.ParseOptions()
	results := make([]string, len(lines))
	errs := make([]error, cfg.Workers)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range jobs {
				keys, spans, n, err := pool.Parse(ctx, opts, lines[i])
				if err != nil {
					errs[w] = err
					continue
				}
				results[i] = format(lines[i], keys, spans, n)
			}
		}(w)
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func format(line string, keys zhuyin.Keys, spans []zhuyin.Span, n int) string {
	sp := make([]string, len(spans))
	for i, s := range spans {
		sp[i] = fmt.Sprintf("[%d,%d)", s.Begin, s.End)
	}
	return fmt.Sprintf("%s\t%s\t%d\t%q", keys, strings.Join(sp, " "), n, line[n:])
}
