package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/option"

	"github.com/dwaki/dbudgeteer/config"
	"github.com/dwaki/dbudgeteer/httpd"
	"github.com/dwaki/dbudgeteer/spreadsheet"
)

type Serve struct {
	command
	config      *config.Config
	bind        string
	spreadsheet string
	area        string
	options     []option.ClientOption
}

func NewServe(cfg *config.Config) *Serve {
	return &Serve{
		command:     newCommand(cfg),
		config:      cfg,
		bind:        cfg.HTTPAddress,
		spreadsheet: cfg.Spreadsheet,
		area:        cfg.Range,
	}
}

func (cmd *Serve) Name() string {
	return "serve"
}

func (cmd *Serve) Description() string {
	return "Runs the dbudgeteer HTTP service"
}

func (cmd *Serve) Usage() string {
	return "--credentials <file> --bind <address>"
}

func (cmd *Serve) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] serve [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the HTTP service. GET /test reads the configured spreadsheet range, authorising")
	fmt.Println("  in the browser on first use.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    dbudgeteer serve --credentials "credentials.json" --bind ":8080"`)
	fmt.Println()
}

func (cmd *Serve) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("serve")

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "HTTP service address")
	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "Spreadsheet ID")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Savings!B1:C11'")

	return flagset
}

func (cmd *Serve) Execute(ctx context.Context, options *Options) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.bind) == "" {
		return fmt.Errorf("--bind is a required option")
	}

	authorizer, err := cmd.authorizer(cmd.config, cmd.config.Scopes...)
	if err != nil {
		return err
	}

	reader := spreadsheet.NewReader(authorizer, cmd.user, cmd.options...)
	server := httpd.NewServer(reader, cmd.spreadsheet, cmd.area)

	return server.ListenAndServe(ctx, cmd.bind)
}
