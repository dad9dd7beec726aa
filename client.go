package ciris

import (
	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/client"
	"github.com/cirisai/ciris-go/client/auth/store"
)

// ClientOptions
//
// defines options for configuring a CIRIS client.
type ClientOptions struct {
	BaseURL string `yaml:"baseURL" json:"baseURL" short:"u" long:"url" description:"agent base URL"`
	// RequestsPerMinute caps sustained client-side throughput; 0 uses the
	// default.
	RequestsPerMinute int         `yaml:"requestsPerMinute,omitempty" json:"requestsPerMinute,omitempty" long:"rate" description:"request rate limit per minute"`
	Auth              *ClientAuth `yaml:"auth,omitempty" json:"auth,omitempty"`

	// Logger, if set, is used for warnings and debug tracing.
	Logger *zap.Logger `yaml:"-" json:"-"`
}

// ClientAuth defines credential options for a CIRIS client.
type ClientAuth struct {
	// APIKey, when set, is stored for the base URL before the first request.
	APIKey string `yaml:"apiKey,omitempty" json:"apiKey,omitempty" short:"k" long:"api-key" description:"api key"`
	// StoreLocation overrides the credential file path (default
	// ~/.ciris/auth.json).
	StoreLocation string `yaml:"storeLocation,omitempty" json:"storeLocation,omitempty" short:"s" long:"store" description:"credential file location"`
	// Memory uses an ephemeral in-process store instead of the file store.
	Memory bool `yaml:"memory,omitempty" json:"memory,omitempty" long:"memory" description:"use in-memory credential store"`

	// Store allows injecting a credential store so tokens survive across
	// multiple client instances.
	Store store.Store `yaml:"-" json:"-"`
}

func (c *ClientOptions) Init() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8080"
	}
	if c.Auth == nil {
		c.Auth = &ClientAuth{}
	}
}

// AuthStore resolves the credential store the client will use: an injected
// store wins, then the memory option, then the file store.
func (c *ClientOptions) AuthStore() (store.Store, error) {
	if c.Auth == nil {
		c.Auth = &ClientAuth{}
	}
	if c.Auth.Store != nil {
		return c.Auth.Store, nil
	}
	if c.Auth.Memory {
		c.Auth.Store = store.NewMemoryStore()
		return c.Auth.Store, nil
	}
	var fileOptions []store.FileOption
	if c.Auth.StoreLocation != "" {
		fileOptions = append(fileOptions, store.WithLocation(c.Auth.StoreLocation))
	}
	if c.Logger != nil {
		fileOptions = append(fileOptions, store.WithLogger(c.Logger))
	}
	fileStore, err := store.NewFileStore(fileOptions...)
	if err != nil {
		return nil, err
	}
	c.Auth.Store = fileStore
	return fileStore, nil
}

// NewClient creates a CIRIS client with credentials and rate limiting
// configured via ClientOptions.
func NewClient(options *ClientOptions) (*client.Client, error) {
	options.Init()
	authStore, err := options.AuthStore()
	if err != nil {
		return nil, err
	}
	if options.Auth.APIKey != "" {
		if err := authStore.StoreAPIKey(options.BaseURL, options.Auth.APIKey); err != nil {
			return nil, err
		}
	}
	clientOptions := []client.Option{client.WithStore(authStore)}
	if options.Logger != nil {
		clientOptions = append(clientOptions, client.WithLogger(options.Logger))
	}
	if options.RequestsPerMinute > 0 {
		clientOptions = append(clientOptions, client.WithRateLimit(options.RequestsPerMinute))
	}
	return client.New(options.BaseURL, clientOptions...)
}
