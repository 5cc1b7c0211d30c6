// ABOUTME: Shared command-line entry point for the scraper binaries
// ABOUTME: Two positional arguments in, indented JSON out, error JSON on stderr

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ScrapeFunc runs one scrape for two bike names and returns the serializable
// result document.
type ScrapeFunc func(ctx context.Context, bike1, bike2 string) (interface{}, error)

// Run executes a scraper with the given arguments. It enforces the
// two-argument contract, writes the result JSON to out and any usage or
// runtime error as a JSON object to errOut. The return value is the process
// exit code.
func Run(usage string, args []string, out, errOut io.Writer, scrape ScrapeFunc) int {
	if len(args) != 2 {
		writeErrorJSON(errOut, "Usage: "+usage)
		return 1
	}

	result, err := scrape(context.Background(), args[0], args[1])
	if err != nil {
		writeErrorJSON(errOut, err.Error())
		return 1
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		writeErrorJSON(errOut, err.Error())
		return 1
	}

	fmt.Fprintln(out, string(data))
	return 0
}

func writeErrorJSON(w io.Writer, msg string) {
	payload, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, string(payload))
}
