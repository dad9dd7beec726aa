package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/internal/conv"
)

// defaultDirName and defaultFileName locate the durable document under the
// user's home directory when no explicit location is configured.
const (
	defaultDirName  = ".ciris"
	defaultFileName = "auth.json"
)

// FileStore keeps all credentials in one JSON document on disk. Every
// operation is a full load-mutate-save cycle; writes go through a temp file
// and an atomic rename so a reader never observes a partial document.
// Concurrent processes race at whole-document granularity (last writer
// wins); a single local client is assumed.
type FileStore struct {
	location string
	logger   *zap.Logger
	now      nowFunc
	// rename performs the atomic replace; swapped in tests to inject
	// persist failures.
	rename func(oldPath, newPath string) error
	mux    sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithLocation overrides the storage location of the durable document.
func WithLocation(location string) FileOption {
	return func(s *FileStore) {
		s.location = location
	}
}

// WithLogger sets the logger used for best-effort warnings.
func WithLogger(logger *zap.Logger) FileOption {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// WithClock overrides the wall clock; tests use it to pin expiry decisions.
func WithClock(now func() time.Time) FileOption {
	return func(s *FileStore) {
		s.now = now
	}
}

// NewFileStore creates a file-backed store, ensuring its parent directory
// exists with owner-only permissions. Failure to restrict permissions is
// logged and tolerated; failure to create the directory is not.
func NewFileStore(options ...FileOption) (*FileStore, error) {
	ret := &FileStore{
		logger: zap.NewNop(),
		now:    time.Now,
		rename: os.Rename,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.location == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}
		ret.location = filepath.Join(home, defaultDirName, defaultFileName)
	}
	dir := filepath.Dir(ret.location)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating auth dir: %w", err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		// Some hosts (notably Windows) do not support chmod; weakened
		// permissions degrade posture, not correctness.
		ret.logger.Warn("unable to restrict auth dir permissions",
			zap.String("dir", dir), zap.Error(err))
	}
	return ret, nil
}

// Location returns the resolved path of the durable document.
func (s *FileStore) Location() string {
	return s.location
}

// document is the on-disk form. Timestamps travel as canonical strings; the
// conv codec is the only place they are encoded or decoded.
type document struct {
	APIKeys map[string]apiKeyRecord `json:"api_keys,omitempty"`
	Tokens  map[string]tokenRecord  `json:"tokens,omitempty"`
}

type apiKeyRecord struct {
	Key       string `json:"key"`
	CreatedAt string `json:"created_at"`
}

type tokenRecord struct {
	Token        string `json:"token"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
	StoredAt     string `json:"stored_at"`
}

func (d *document) empty() bool {
	return len(d.APIKeys) == 0 && len(d.Tokens) == 0
}

// load reads the document, returning an empty one when the file does not
// exist. A file that exists but does not parse surfaces as *CorruptError,
// never as an empty result.
func (s *FileStore) load() (*document, error) {
	data, err := os.ReadFile(s.location)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{}, nil
		}
		return nil, &CorruptError{Location: s.location, Err: err}
	}
	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &CorruptError{Location: s.location, Err: err}
	}
	return doc, nil
}

// save persists the full document: write to a temp file in the same
// directory, restrict it to owner read/write (best-effort), then atomically
// rename over the real location. On failure the previous document is intact.
func (s *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Location: s.location, Err: err}
	}
	dir := filepath.Dir(s.location)
	tmp, err := os.CreateTemp(dir, ".auth-*.tmp")
	if err != nil {
		return &WriteError{Location: s.location, Err: err}
	}
	tmpName := tmp.Name()
	if err := os.Chmod(tmpName, 0o600); err != nil {
		s.logger.Warn("unable to restrict auth file permissions",
			zap.String("file", tmpName), zap.Error(err))
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Location: s.location, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Location: s.location, Err: err}
	}
	if err := s.rename(tmpName, s.location); err != nil {
		os.Remove(tmpName)
		return &WriteError{Location: s.location, Err: err}
	}
	return nil
}

// StoreAPIKey upserts the API key for a base URL; last write wins.
func (s *FileStore) StoreAPIKey(baseURL, apiKey string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if doc.APIKeys == nil {
		doc.APIKeys = map[string]apiKeyRecord{}
	}
	doc.APIKeys[normalizeBaseURL(baseURL)] = apiKeyRecord{
		Key:       apiKey,
		CreatedAt: conv.FormatTime(s.now()),
	}
	return s.save(doc)
}

// APIKey returns the stored API key for a base URL, "" when absent.
func (s *FileStore) APIKey(baseURL string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return "", err
	}
	record, ok := doc.APIKeys[normalizeBaseURL(baseURL)]
	if !ok {
		return "", nil
	}
	return record.Key, nil
}

// StoreToken upserts the token for a base URL with a fresh StoredAt stamp.
func (s *FileStore) StoreToken(baseURL string, token *Token) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if doc.Tokens == nil {
		doc.Tokens = map[string]tokenRecord{}
	}
	doc.Tokens[normalizeBaseURL(baseURL)] = tokenRecord{
		Token:        token.Value,
		ExpiresAt:    conv.FormatTimePtr(token.ExpiresAt),
		RefreshToken: token.RefreshToken,
		TokenType:    token.Type(),
		Scope:        token.Scope,
		StoredAt:     conv.FormatTime(s.now()),
	}
	return s.save(doc)
}

// LookupToken reconstructs the stored token for a base URL and reports its
// state. Expired tokens come back with TokenExpired rather than vanishing,
// so callers holding a refresh token can renew instead of re-authenticating.
func (s *FileStore) LookupToken(baseURL string) (*Token, TokenState, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, TokenAbsent, err
	}
	record, ok := doc.Tokens[normalizeBaseURL(baseURL)]
	if !ok {
		return nil, TokenAbsent, nil
	}
	token, err := s.reconstruct(&record)
	if err != nil {
		return nil, TokenAbsent, err
	}
	if token.ExpiredAt(s.now()) {
		return token, TokenExpired, nil
	}
	return token, TokenValid, nil
}

func (s *FileStore) reconstruct(record *tokenRecord) (*Token, error) {
	expiresAt, err := conv.ParseTimePtr(record.ExpiresAt)
	if err != nil {
		return nil, &CorruptError{Location: s.location, Err: err}
	}
	storedAt, err := conv.ParseTimePtr(record.StoredAt)
	if err != nil {
		return nil, &CorruptError{Location: s.location, Err: err}
	}
	token := &Token{
		Value:        record.Token,
		ExpiresAt:    expiresAt,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		Scope:        record.Scope,
	}
	if token.TokenType == "" {
		token.TokenType = DefaultTokenType
	}
	if storedAt != nil {
		token.StoredAt = *storedAt
	}
	return token, nil
}

// Clear removes both the API-key and token entries for one base URL. When
// nothing is stored for the URL the document is left untouched.
func (s *FileStore) Clear(baseURL string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	key := normalizeBaseURL(baseURL)
	_, hadKey := doc.APIKeys[key]
	_, hadToken := doc.Tokens[key]
	if !hadKey && !hadToken {
		return nil
	}
	delete(doc.APIKeys, key)
	delete(doc.Tokens, key)
	return s.save(doc)
}

// ClearAll deletes the durable document, resetting the store completely.
func (s *FileStore) ClearAll() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if err := os.Remove(s.location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &WriteError{Location: s.location, Err: err}
	}
	return nil
}

// List reports stored credential kinds per base URL; the token-expired flag
// uses the same expiry rule as LookupToken.
func (s *FileStore) List() (map[string]Entry, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	ret := make(map[string]Entry, len(doc.APIKeys)+len(doc.Tokens))
	for url := range doc.APIKeys {
		entry := ret[url]
		entry.HasAPIKey = true
		ret[url] = entry
	}
	now := s.now()
	for url, record := range doc.Tokens {
		entry := ret[url]
		entry.HasToken = true
		token, err := s.reconstruct(&record)
		if err != nil {
			return nil, err
		}
		expired := token.ExpiredAt(now)
		entry.TokenExpired = &expired
		ret[url] = entry
	}
	return ret, nil
}
