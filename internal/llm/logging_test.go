package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/engihub/internal/store"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingRepo) QueryLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *recordingRepo) UsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsMetadata(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("An op-amp is a high-gain amplifier."), Usage: Usage{InputTokens: 12, OutputTokens: 40}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	p := WithLogging(mock, ProviderMock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposeExplain)
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "op-amp"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(WithPurpose(context.Background(), PurposeChat), Request{}); err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(repo.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(repo.events))
	}
	ok, failed := repo.events[0], repo.events[1]
	if !ok.Success || ok.Purpose != "explain" || ok.InputTokens != 12 || ok.OutputTokens != 40 {
		t.Errorf("unexpected success event: %+v", ok)
	}
	if ok.RequestID == "" || ok.RequestID == failed.RequestID {
		t.Errorf("expected distinct request ids, got %q and %q", ok.RequestID, failed.RequestID)
	}
	if failed.Success || failed.Purpose != "chat" || failed.ErrorMessage == "" {
		t.Errorf("unexpected failure event: %+v", failed)
	}
}

func TestLoggingProvider_RepoFailureDoesNotFailCall(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(TextResponse("fine"))
	p := WithLogging(mock, ProviderMock, repo, zap.New(core))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "fine" {
		t.Fatalf("unexpected text %q", resp.Text())
	}
	if logs.FilterMessage("record llm usage").Len() != 1 {
		t.Fatalf("expected a warning about the usage log, got %v", logs.All())
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("expected model id to delegate, got %q", p.ModelID())
	}
}
