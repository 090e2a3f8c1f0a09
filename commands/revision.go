package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"

	"github.com/dwaki/dbudgeteer/config"
	"github.com/dwaki/dbudgeteer/spreadsheet"
)

// Revision displays the latest Drive revision of a spreadsheet. The Drive scope is requested
// separately, so the credential is stored under '<user>.drive'.
type Revision struct {
	command
	config      *config.Config
	spreadsheet string
	url         string
	options     []option.ClientOption
}

func NewRevision(cfg *config.Config) *Revision {
	return &Revision{
		command:     newCommand(cfg),
		config:      cfg,
		spreadsheet: cfg.Spreadsheet,
	}
}

func (cmd *Revision) Name() string {
	return "revision"
}

func (cmd *Revision) Description() string {
	return "Displays the latest revision of a Google Sheets spreadsheet"
}

func (cmd *Revision) Usage() string {
	return "--credentials <file> [--spreadsheet <id> | --url <url>]"
}

func (cmd *Revision) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] revision [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the ID and modification time of the latest revision of a spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Revision) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("revision")

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "Spreadsheet ID")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL (overrides --spreadsheet)")

	return flagset
}

func (cmd *Revision) Execute(ctx context.Context, options *Options) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	fileID := cmd.spreadsheet
	if strings.TrimSpace(cmd.url) != "" {
		id, err := spreadsheet.ParseURL(cmd.url)
		if err != nil {
			return err
		}

		fileID = id
	}

	if strings.TrimSpace(fileID) == "" {
		return fmt.Errorf("one of --spreadsheet or --url is required")
	}

	authorizer, err := cmd.authorizer(cmd.config, spreadsheet.DriveScope)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	revision, err := spreadsheet.NewRevisions(authorizer, cmd.user+".drive", cmd.options...).Latest(ctx, fileID)
	if err != nil {
		return err
	}

	fmt.Printf("%v  %v\n", revision.ID, revision.Modified.Local().Format(time.RFC3339))

	return nil
}
