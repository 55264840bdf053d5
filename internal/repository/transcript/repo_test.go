package transcript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louvou/catalog/internal/domain"
)

type mockStore struct {
	appendFn func(ctx context.Context, key string, value []byte) error
	rangeFn  func(ctx context.Context, key string) ([][]byte, error)

	appended   [][]byte
	appendKey  string
	expireKey  string
	expireTTL  time.Duration
	expireFail error
}

func (m *mockStore) ListAppend(ctx context.Context, key string, value []byte) error {
	m.appendKey = key
	if m.appendFn != nil {
		return m.appendFn(ctx, key, value)
	}
	m.appended = append(m.appended, value)
	return nil
}

func (m *mockStore) ListRange(ctx context.Context, key string) ([][]byte, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, key)
	}
	return m.appended, nil
}

func (m *mockStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.expireKey = key
	m.expireTTL = ttl
	return m.expireFail
}

func TestAppendAndHistory_RoundTrip(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, 24*time.Hour)

	msg := domain.ChatMessage{SessionID: "s-1", Role: "user", Content: "occasion: wedding", SentAt: 1700000000000}
	if err := repo.Append(context.Background(), msg); err != nil {
		t.Fatalf("append: %v", err)
	}
	if ms.appendKey != "transcript:s-1" {
		t.Errorf("key = %q", ms.appendKey)
	}
	if ms.expireTTL != 24*time.Hour {
		t.Errorf("ttl = %v", ms.expireTTL)
	}

	got, err := repo.History(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 1 || got[0] != msg {
		t.Errorf("history = %+v", got)
	}
}

func TestHistory_UnknownSessionIsEmpty(t *testing.T) {
	ms := &mockStore{rangeFn: func(_ context.Context, _ string) ([][]byte, error) {
		return nil, nil
	}}
	repo := New(ms, time.Hour)

	got, err := repo.History(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d", len(got))
	}
}

func TestAppend_StoreFailure(t *testing.T) {
	ms := &mockStore{appendFn: func(_ context.Context, _ string, _ []byte) error {
		return errors.New("connection refused")
	}}
	repo := New(ms, time.Hour)

	err := repo.Append(context.Background(), domain.ChatMessage{SessionID: "s-1"})
	if !errors.Is(err, domain.ErrTranscriptUnavailable) {
		t.Errorf("error = %v, want ErrTranscriptUnavailable", err)
	}
}
