package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dwaki/dbudgeteer/auth"
	"github.com/dwaki/dbudgeteer/config"
	"github.com/dwaki/dbudgeteer/log"
)

const APP = "dbudgeteer"

// Command is implemented by each CLI command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

type Options struct {
	Debug bool
}

// command holds the options shared by every command that needs Google credentials.
type command struct {
	credentials string
	tokens      string
	user        string
	noBrowser   bool
}

func newCommand(cfg *config.Config) command {
	credentials := DEFAULT_CREDENTIALS
	if cfg.Credentials != "" {
		credentials = cfg.Credentials
	}

	return command{
		credentials: credentials,
		tokens:      cfg.Tokens,
		user:        cfg.User,
		noBrowser:   cfg.NoBrowser,
	}
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the OAuth client 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for stored credentials. Credentials are kept in memory only if not set")
	flagset.StringVar(&c.user, "user", c.user, "User ID for the stored credential")
	flagset.BoolVar(&c.noBrowser, "no-browser", c.noBrowser, "Prints the authorisation URL without opening a browser")

	return flagset
}

func (c *command) validate() error {
	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.user) == "" {
		return fmt.Errorf("--user is a required option")
	}

	return nil
}

// authorizer builds the OAuth authorizer for the requested scopes from the client credentials file.
func (c *command) authorizer(cfg *config.Config, scopes ...string) (*auth.Authorizer, error) {
	dir, file := filepath.Split(c.credentials)
	if dir == "" {
		dir = "."
	}

	client, err := auth.LoadClientConfig(os.DirFS(dir), file, scopes...)
	if err != nil {
		return nil, err
	}

	var store auth.Store = auth.NewMemoryStore()
	if c.tokens != "" {
		store = auth.NewFileStore(c.tokens)
	}

	receiver := auth.NewLocalReceiver(cfg.RedirectHost, cfg.RedirectPort)
	presenter := auth.NewConsole(os.Stdout, !c.noBrowser)

	return auth.NewAuthorizer(client, store, receiver, presenter, cfg.RedirectTimeout), nil
}

// Find returns the command matching the name.
func Find(cli []Command, name string) Command {
	for _, c := range cli {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Global options:")
	flag.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func infof(format string, args ...any) {
	log.Infof(format, args...)
}
