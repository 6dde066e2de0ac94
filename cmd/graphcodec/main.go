// Command graphcodec runs the line-delimited stdio judge protocol: it
// reads an "M ε" line, publishes a codebook, then repeatedly reads a
// noisy received graph and writes back a decoded index.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/katalvlaran/graphcodec/codec"
)

// defaultQueryCount mirrors the accuracy harness's own default round
// count: M ε followed by 200 rounds of a self-generated noisy graph.
const defaultQueryCount = 200

// totalBudgetSeconds and safetyMarginSeconds bound the per-query budget derivation:
// (5.0 - setupElapsed - 0.5) / queryCount.
const totalBudgetSeconds = 5.0
const safetyMarginSeconds = 0.5

func main() {
	log.Println("Starting graphcodec judge-protocol runner...")

	start := time.Now()

	queryCount, overrides := parseArgs(os.Args[1:])

	reader := bufio.NewReader(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	m, eps, err := readHeader(reader)
	if err != nil {
		log.Fatalf("graphcodec: protocol violation reading header: %v", err)
	}
	log.Printf("Negotiated M=%d eps=%.2f", m, eps)

	c, err := codec.New(m, eps, overrides)
	if err != nil {
		log.Fatalf("graphcodec: failed to build codec: %v", err)
	}

	if err := publishCodebook(writer, c, m); err != nil {
		log.Fatalf("graphcodec: protocol violation writing codebook: %v", err)
	}

	setupElapsed := time.Since(start).Seconds()
	perQuery := (totalBudgetSeconds - setupElapsed - safetyMarginSeconds) / float64(queryCount)
	if perQuery <= 0 {
		log.Fatalf("graphcodec: setup consumed the entire query budget (elapsed=%.3fs)", setupElapsed)
	}
	budget := time.Duration(perQuery * float64(time.Second))
	log.Printf("Per-query budget: %s (queryCount=%d)", budget, queryCount)

	runQueries(reader, writer, c, budget)
}

// parseArgs applies the accuracy harness's positional argv convention:
// [query_count, bits, redundancy, score_coef]. Any argument may be
// omitted by passing an empty string or by truncating argv.
func parseArgs(argv []string) (int, codec.Options) {
	queryCount := defaultQueryCount
	var overrides codec.Options

	get := func(i int) string {
		if i < len(argv) {
			return argv[i]
		}
		return ""
	}

	if s := get(0); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			queryCount = v
		}
	}
	if s := get(1); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			overrides.K = &v
		}
	}
	if s := get(2); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			overrides.R = &v
		}
	}
	if s := get(3); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			overrides.Alpha = &v
		}
	}

	return queryCount, overrides
}

// readHeader reads the judge's "M ε" line, skipping comment/blank lines.
func readHeader(reader *bufio.Reader) (int, float64, error) {
	line, err := readMeaningfulLine(reader)
	if err != nil {
		return 0, 0, err
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"M eps\", got %q", line)
	}

	m, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid M %q: %w", fields[0], err)
	}

	eps, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid eps %q: %w", fields[1], err)
	}

	return m, eps, nil
}

// publishCodebook writes N followed by M codebook lines.
func publishCodebook(writer *bufio.Writer, c *codec.IsomorphismCodec, m int) error {
	n := c.GraphSize()
	if n < 4 || n > 100 {
		return fmt.Errorf("published N=%d out of range [4, 100]", n)
	}

	if _, err := fmt.Fprintln(writer, n); err != nil {
		return err
	}

	for i := 0; i < m; i++ {
		g, err := c.Encode(i)
		if err != nil {
			return fmt.Errorf("encoding symbol %d: %w", i, err)
		}

		line := g.Serialize()
		if len(line) != n*(n-1)/2 {
			return fmt.Errorf("symbol %d serialized to wrong length %d", i, len(line))
		}

		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// runQueries loops reading noisy graph lines and writing decoded
// indices until the judge closes stdin.
func runQueries(reader *bufio.Reader, writer *bufio.Writer, c *codec.IsomorphismCodec, budget time.Duration) {
	n := c.GraphSize()

	for {
		line, err := readMeaningfulLine(reader)
		if err != nil {
			return
		}

		g, err := bitgraph.Deserialize(line, n)
		if err != nil {
			log.Fatalf("graphcodec: protocol violation: %v", err)
		}

		decoded, err := c.Decode(g, budget)
		if err != nil {
			log.Fatalf("graphcodec: protocol violation: %v", err)
		}

		if _, err := fmt.Fprintln(writer, decoded); err != nil {
			log.Fatalf("graphcodec: failed to write decoded index: %v", err)
		}
		if err := writer.Flush(); err != nil {
			log.Fatalf("graphcodec: failed to flush output: %v", err)
		}
	}
}

// readMeaningfulLine reads lines until it finds one that is not blank
// and does not start with '#': both are comments the judge protocol
// requires consumers to skip.
func readMeaningfulLine(reader *bufio.Reader) (string, error) {
	for {
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")

		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return trimmed, nil
		}

		if err != nil {
			return "", err
		}
	}
}
