package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	goPass "github.com/MrEthical07/goPass"
	promexport "github.com/MrEthical07/goPass/metrics/export/prometheus"
	"github.com/rs/zerolog"
)

const usage = `usage: gopass [-config file] <command> [flags] [args]

commands:
  check  [password]          policy analysis as JSON
  hash   [password]          Argon2id PHC hash
  verify <hash> [password]   exit 0 on match, 1 otherwise
  rehash <hash>              report whether the hash needs upgrading
  batch  [-workers N] [-keep-empty]
                             hash newline-separated passwords from stdin;
                             blank lines are skipped unless -keep-empty
  sha1   [-range] [password] uppercase SHA-1 breach digest
  bench  [-n N] [-hashes N]  run a load loop and print Prometheus metrics

A missing password argument is read from the first line of stdin.
`

var errUsage = errors.New("usage")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
	cfg    cliConfig
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gopass", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default ./gopass.yaml if present)")
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: newLogger(stderr, cfg.LogLevel),
		cfg:    cfg,
	}

	code, err := a.dispatch(fs.Arg(0), fs.Args()[1:])
	if errors.Is(err, errUsage) {
		fmt.Fprint(stderr, usage)
		return 2
	}
	if err != nil {
		a.logger.Error().Err(err).Str("command", fs.Arg(0)).Msg("command failed")
		return 1
	}
	return code
}

func (a *app) dispatch(cmd string, args []string) (int, error) {
	switch cmd {
	case "check":
		return a.check(args)
	case "hash":
		return a.hash(args)
	case "verify":
		return a.verify(args)
	case "rehash":
		return a.rehash(args)
	case "batch":
		return a.batch(args)
	case "sha1":
		return a.sha1(args)
	case "bench":
		return a.bench(args)
	default:
		return 2, errUsage
	}
}

func (a *app) engine() (*goPass.Engine, error) {
	return a.engineWith(a.cfg.engineConfig())
}

func (a *app) engineWith(cfg goPass.Config) (*goPass.Engine, error) {
	return goPass.New().
		WithConfig(cfg).
		WithLogger(a.logger).
		WithAuditSink(goPass.NewLoggerSink(a.logger)).
		Build()
}

// passwordArg returns args[i], or the first stdin line when args is short.
func (a *app) passwordArg(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	r := bufio.NewReader(a.stdin)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: no password given", errUsage)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) check(args []string) (int, error) {
	pw, err := a.passwordArg(args, 0)
	if err != nil {
		return 2, err
	}
	engine, err := a.engine()
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	analysis := engine.CheckPasswordPolicy(pw)
	if err := a.writeJSON(analysis); err != nil {
		return 1, err
	}
	if !analysis.IsCompliant {
		return 1, nil
	}
	return 0, nil
}

func (a *app) hash(args []string) (int, error) {
	pw, err := a.passwordArg(args, 0)
	if err != nil {
		return 2, err
	}
	engine, err := a.engine()
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	hash, err := engine.HashPassword(pw)
	if err != nil {
		return 1, err
	}
	fmt.Fprintln(a.stdout, hash)
	return 0, nil
}

func (a *app) verify(args []string) (int, error) {
	if len(args) < 1 {
		return 2, errUsage
	}
	pw, err := a.passwordArg(args, 1)
	if err != nil {
		return 2, err
	}
	engine, err := a.engine()
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	ok := engine.VerifyPasswordHash(pw, args[0])
	fmt.Fprintln(a.stdout, strconv.FormatBool(ok))
	if !ok {
		return 1, nil
	}
	return 0, nil
}

func (a *app) rehash(args []string) (int, error) {
	if len(args) != 1 {
		return 2, errUsage
	}
	engine, err := a.engine()
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	upgrade, err := engine.NeedsRehash(args[0])
	if err != nil {
		return 1, err
	}
	fmt.Fprintln(a.stdout, strconv.FormatBool(upgrade))
	return 0, nil
}

func (a *app) batch(args []string) (int, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	workers := fs.Int("workers", a.cfg.Batch.Workers, "concurrent hash workers (0 = GOMAXPROCS)")
	keepEmpty := fs.Bool("keep-empty", false, "hash blank lines as the empty password")
	if err := fs.Parse(args); err != nil {
		return 2, errUsage
	}

	var passwords []string
	scanner := bufio.NewScanner(a.stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" && !*keepEmpty {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return 1, err
	}

	cfg := a.cfg.engineConfig()
	cfg.Batch.Workers = *workers
	engine, err := a.engineWith(cfg)
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	out := engine.BatchHashPasswords(passwords)
	if err := a.writeJSON(out); err != nil {
		return 1, err
	}
	for _, h := range out {
		if h == goPass.BatchErrorSentinel {
			return 1, nil
		}
	}
	return 0, nil
}

func (a *app) sha1(args []string) (int, error) {
	fs := flag.NewFlagSet("sha1", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	rangeMode := fs.Bool("range", false, "print the 5-character prefix and the suffix on separate lines")
	if err := fs.Parse(args); err != nil {
		return 2, errUsage
	}

	pw, err := a.passwordArg(fs.Args(), 0)
	if err != nil {
		return 2, err
	}
	engine, err := a.engine()
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	if *rangeMode {
		prefix, suffix := engine.BreachRange(pw)
		fmt.Fprintln(a.stdout, prefix)
		fmt.Fprintln(a.stdout, suffix)
		return 0, nil
	}
	fmt.Fprintln(a.stdout, engine.HashPasswordSHA1(pw))
	return 0, nil
}

func (a *app) bench(args []string) (int, error) {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	checks := fs.Int("n", 10000, "policy checks to run")
	hashes := fs.Int("hashes", 8, "passwords to hash in one batch")
	if err := fs.Parse(args); err != nil {
		return 2, errUsage
	}
	if *checks < 0 || *hashes < 0 {
		return 2, fmt.Errorf("%w: counts must be >= 0", errUsage)
	}

	cfg := a.cfg.engineConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true
	engine, err := a.engineWith(cfg)
	if err != nil {
		return 1, err
	}
	defer engine.Close()

	start := time.Now()
	for i := 0; i < *checks; i++ {
		engine.CheckPasswordPolicy(benchPassword(i))
	}
	checkElapsed := time.Since(start)

	batch := make([]string, *hashes)
	for i := range batch {
		batch[i] = benchPassword(i)
	}
	start = time.Now()
	engine.BatchHashPasswords(batch)
	hashElapsed := time.Since(start)

	a.logger.Info().
		Int("checks", *checks).
		Dur("check_elapsed", checkElapsed).
		Int("hashes", *hashes).
		Dur("hash_elapsed", hashElapsed).
		Msg("bench complete")

	exporter := promexport.NewPrometheusExporter(engine)
	if err := exporter.WriteText(a.stdout); err != nil {
		return 1, err
	}
	return 0, nil
}

var benchSeeds = []string{"password", "Zq9!mK2#vL7$", "abc123", "Tr0ub4dor&3", "qwerty", "correct horse battery staple"}

func benchPassword(i int) string {
	return benchSeeds[i%len(benchSeeds)] + strconv.Itoa(i)
}
