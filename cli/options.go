package cli

// Options is the top-level command line surface of the ciris binary.
type Options struct {
	URL     string `short:"u" long:"url" description:"agent base URL" env:"CIRIS_URL" default:"http://localhost:8080"`
	Store   string `short:"s" long:"store" description:"credential file location (default ~/.ciris/auth.json)" env:"CIRIS_AUTH_STORE"`
	Verbose bool   `short:"v" long:"verbose" description:"verbose logging"`

	Login       LoginOptions       `command:"login" description:"authenticate and store the issued token"`
	Logout      LogoutOptions      `command:"logout" description:"invalidate the session and clear stored credentials"`
	Status      StatusOptions      `command:"status" description:"show agent status"`
	Ask         AskOptions         `command:"ask" description:"send a message to the agent and print the reply"`
	Credentials CredentialsOptions `command:"auth" description:"manage stored credentials"`
}

type LoginOptions struct {
	Username string `short:"U" long:"username" description:"username" required:"true"`
	Password string `short:"P" long:"password" description:"password" required:"true"`
}

type LogoutOptions struct{}

type StatusOptions struct{}

type AskOptions struct {
	Args struct {
		Message string `positional-arg-name:"message" required:"true" description:"message to send"`
	} `positional-args:"true"`
}

type CredentialsOptions struct {
	List     bool   `short:"l" long:"list" description:"list stored credentials per base URL"`
	APIKey   string `short:"k" long:"api-key" description:"store an API key for the base URL"`
	Clear    bool   `short:"c" long:"clear" description:"clear credentials for the base URL"`
	ClearAll bool   `long:"clear-all" description:"clear all stored credentials"`
}
