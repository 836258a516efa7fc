package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by the file-based test.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "usage.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= last {
			t.Fatalf("sequence went from %d to %d", last, n)
		}
		last = n
	}
}

func TestAppendAndQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{RequestID: "r1", Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "roadmap", InputTokens: 10, OutputTokens: 200, LatencyMs: 900, Success: true},
		{RequestID: "r2", Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "quiz", InputTokens: 12, OutputTokens: 400, LatencyMs: 1500, Success: true},
		{RequestID: "r3", Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "quiz", LatencyMs: 30, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].RequestID != "r3" || all[2].RequestID != "r1" {
		t.Errorf("expected newest first, got %s..%s", all[0].RequestID, all[2].RequestID)
	}
	if all[0].ErrorMessage != "rate limited" || all[0].Success {
		t.Errorf("failure not round-tripped: %+v", all[0])
	}
	if all[2].ErrorMessage != "" {
		t.Errorf("expected empty error message, got %q", all[2].ErrorMessage)
	}
	if all[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	quiz, err := repo.QueryLLMRequests(ctx, QueryOpts{Purpose: "quiz", Limit: 1})
	if err != nil {
		t.Fatalf("query quiz: %v", err)
	}
	if len(quiz) != 1 || quiz[0].RequestID != "r3" {
		t.Fatalf("expected latest quiz call r3, got %+v", quiz)
	}

	after, err := repo.QueryLLMRequests(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].RequestID != "r3" {
		t.Fatalf("expected only r3 after sequence %d, got %+v", all[1].Sequence, after)
	}
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{RequestID: "a", Model: "m", Purpose: "chat", InputTokens: 5, OutputTokens: 50, LatencyMs: 100, Success: true},
		{RequestID: "b", Model: "m", Purpose: "chat", InputTokens: 7, OutputTokens: 70, LatencyMs: 300, Success: true},
		{RequestID: "c", Model: "m", Purpose: "chat", LatencyMs: 200, Success: false, ErrorMessage: "boom"},
		{RequestID: "d", Model: "m", Purpose: "explain", InputTokens: 3, OutputTokens: 30, LatencyMs: 50, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(usage))
	}

	chat := usage[0]
	if chat.Purpose != "chat" {
		t.Fatalf("expected chat first, got %q", chat.Purpose)
	}
	if chat.Calls != 3 || chat.Failures != 1 {
		t.Errorf("chat calls/failures = %d/%d, want 3/1", chat.Calls, chat.Failures)
	}
	if chat.InputTokens != 12 || chat.OutputTokens != 120 {
		t.Errorf("chat tokens = %d/%d, want 12/120", chat.InputTokens, chat.OutputTokens)
	}
	if chat.AvgLatencyMs != 200 {
		t.Errorf("chat avg latency = %v, want 200", chat.AvgLatencyMs)
	}
}
