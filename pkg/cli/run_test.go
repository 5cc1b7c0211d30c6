package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRun_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"one"},
		{"one", "two", "three"},
	} {
		var out, errOut bytes.Buffer
		code := Run("test-scraper 'bike1' 'bike2'", args, &out, &errOut, func(_ context.Context, _, _ string) (interface{}, error) {
			t.Fatal("scrape must not run on bad argv")
			return nil, nil
		})

		if code != 1 {
			t.Errorf("args %v: exit code = %d, want 1", args, code)
		}
		if out.Len() != 0 {
			t.Errorf("args %v: stdout should stay empty", args)
		}

		var payload map[string]string
		if err := json.Unmarshal(errOut.Bytes(), &payload); err != nil {
			t.Fatalf("args %v: stderr is not a JSON object: %v", args, err)
		}
		if !strings.Contains(payload["error"], "Usage:") {
			t.Errorf("args %v: error = %q, want usage text", args, payload["error"])
		}
	}
}

func TestRun_Success(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run("test-scraper", []string{"Classic 350", "CB350"}, &out, &errOut, func(_ context.Context, bike1, bike2 string) (interface{}, error) {
		return map[string]string{"first": bike1, "second": bike2}, nil
	})

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr should stay empty, got %q", errOut.String())
	}

	var payload map[string]string
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("stdout is not valid JSON: %v", err)
	}
	if payload["first"] != "Classic 350" || payload["second"] != "CB350" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestRun_OutputIsIndented(t *testing.T) {
	var out, errOut bytes.Buffer
	Run("test-scraper", []string{"a", "b"}, &out, &errOut, func(_ context.Context, _, _ string) (interface{}, error) {
		return map[string]int{"n": 1}, nil
	})

	if !strings.Contains(out.String(), "\n  ") {
		t.Errorf("output should be indented: %q", out.String())
	}
}

func TestRun_ScrapeError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run("test-scraper", []string{"a", "b"}, &out, &errOut, func(_ context.Context, _, _ string) (interface{}, error) {
		return nil, errors.New("something unrecoverable")
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	var payload map[string]string
	if err := json.Unmarshal(errOut.Bytes(), &payload); err != nil {
		t.Fatalf("stderr is not a JSON object: %v", err)
	}
	if payload["error"] != "something unrecoverable" {
		t.Errorf("error = %q", payload["error"])
	}
}
