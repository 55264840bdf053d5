// Package transcript stores stylist session transcripts in the transcript
// log store. The recommendation rule layer never reads these entries.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/louvou/catalog/internal/domain"
)

const keyPrefix = "transcript:"

// store is the consumer interface for transcript operations.
type store interface {
	ListAppend(ctx context.Context, key string, value []byte) error
	ListRange(ctx context.Context, key string) ([][]byte, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Repo keeps per-session message lists with a sliding TTL.
type Repo struct {
	store store
	ttl   time.Duration
}

// New creates a transcript repository. Each append refreshes the session's
// TTL so active conversations outlive idle ones.
func New(s store, ttl time.Duration) *Repo {
	return &Repo{store: s, ttl: ttl}
}

// Append records one message at the end of the session transcript.
func (r *Repo) Append(ctx context.Context, msg domain.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := keyPrefix + msg.SessionID
	if err := r.store.ListAppend(ctx, key, data); err != nil {
		return fmt.Errorf("append transcript: %w: %w", domain.ErrTranscriptUnavailable, err)
	}
	if err := r.store.Expire(ctx, key, r.ttl); err != nil {
		return fmt.Errorf("expire transcript: %w: %w", domain.ErrTranscriptUnavailable, err)
	}
	return nil
}

// History returns the session transcript oldest-first. An unknown session
// yields an empty slice.
func (r *Repo) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	raw, err := r.store.ListRange(ctx, keyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w: %w", domain.ErrTranscriptUnavailable, err)
	}

	out := make([]domain.ChatMessage, 0, len(raw))
	for _, data := range raw {
		var msg domain.ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode transcript entry: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}
