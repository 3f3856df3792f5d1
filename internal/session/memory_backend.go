package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	values  map[string]string
	expires time.Time
}

// MemoryBackend keeps sessions in process; used for tests and single-node dev.
type MemoryBackend struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	return &MemoryBackend{ttl: ttl, sessions: make(map[string]memoryEntry)}
}

func (b *MemoryBackend) Load(ctx context.Context, sid string) (map[string]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.sessions[sid]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expires) {
		delete(b.sessions, sid)
		return nil, nil
	}
	return copyValues(entry.values), nil
}

func (b *MemoryBackend) Save(ctx context.Context, sid string, values map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[sid] = memoryEntry{values: copyValues(values), expires: time.Now().Add(b.ttl)}
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, sid string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, sid)
	return nil
}

func (b *MemoryBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func copyValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
