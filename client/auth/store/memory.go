package store

import (
	"sync"
	"time"
)

// memoryStore keeps credentials in process memory. It backs tests and
// short-lived clients that must not touch the user's credential file.
type memoryStore struct {
	mu      sync.RWMutex
	apiKeys map[string]string
	tokens  map[string]Token
	now     nowFunc
}

// MemoryOption configures a memory store.
type MemoryOption func(*memoryStore)

// WithMemoryClock overrides the wall clock of a memory store.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *memoryStore) {
		m.now = now
	}
}

// NewMemoryStore creates an ephemeral in-memory store.
func NewMemoryStore(options ...MemoryOption) Store {
	ret := &memoryStore{
		apiKeys: map[string]string{},
		tokens:  map[string]Token{},
		now:     time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (m *memoryStore) StoreAPIKey(baseURL, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiKeys[normalizeBaseURL(baseURL)] = apiKey
	return nil
}

func (m *memoryStore) APIKey(baseURL string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.apiKeys[normalizeBaseURL(baseURL)], nil
}

func (m *memoryStore) StoreToken(baseURL string, token *Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *token
	stored.StoredAt = m.now()
	if stored.TokenType == "" {
		stored.TokenType = DefaultTokenType
	}
	m.tokens[normalizeBaseURL(baseURL)] = stored
	return nil
}

func (m *memoryStore) LookupToken(baseURL string) (*Token, TokenState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.tokens[normalizeBaseURL(baseURL)]
	if !ok {
		return nil, TokenAbsent, nil
	}
	token := stored
	if token.ExpiredAt(m.now()) {
		return &token, TokenExpired, nil
	}
	return &token, TokenValid, nil
}

func (m *memoryStore) Clear(baseURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalizeBaseURL(baseURL)
	delete(m.apiKeys, key)
	delete(m.tokens, key)
	return nil
}

func (m *memoryStore) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiKeys = map[string]string{}
	m.tokens = map[string]Token{}
	return nil
}

func (m *memoryStore) List() (map[string]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := make(map[string]Entry, len(m.apiKeys)+len(m.tokens))
	for url := range m.apiKeys {
		entry := ret[url]
		entry.HasAPIKey = true
		ret[url] = entry
	}
	now := m.now()
	for url, token := range m.tokens {
		entry := ret[url]
		entry.HasToken = true
		expired := token.ExpiredAt(now)
		entry.TokenExpired = &expired
		ret[url] = entry
	}
	return ret, nil
}
