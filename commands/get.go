package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/option"

	"github.com/dwaki/dbudgeteer/config"
	"github.com/dwaki/dbudgeteer/spreadsheet"
)

type Get struct {
	command
	config      *config.Config
	spreadsheet string
	url         string
	area        string
	file        string
	options     []option.ClientOption
}

func NewGet(cfg *config.Config) *Get {
	return &Get{
		command:     newCommand(cfg),
		config:      cfg,
		spreadsheet: cfg.Spreadsheet,
		area:        cfg.Range,
	}
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a range from a Google Sheets worksheet"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> [--spreadsheet <id> | --url <url>] --range <range> [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves a range from a Google Sheets worksheet and prints it (or saves it to a file) as TSV")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    dbudgeteer --debug get --credentials "credentials.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1GMYHwNHrFYrpwsmfaSX0UjlH-eZjppRsOyEMzIEfwXU" \`)
	fmt.Println(`                           --range "Savings!B1:C11" \`)
	fmt.Println(`                           --file "savings.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "Spreadsheet ID")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL (overrides --spreadsheet)")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Savings!B1:C11'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Prints to the console if not set")

	return flagset
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
	spreadsheetID, err := cmd.validate()
	if err != nil {
		return err
	}

	debugf("Spreadsheet - ID:%s  range:%s", spreadsheetID, cmd.area)

	authorizer, err := cmd.authorizer(cmd.config, cmd.config.Scopes...)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	reader := spreadsheet.NewReader(authorizer, cmd.user, cmd.options...)

	rows, err := reader.ReadRange(ctx, spreadsheetID, cmd.area)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	if cmd.file == "" {
		return spreadsheet.WriteTSV(os.Stdout, rows)
	}

	if err := cmd.write(rows); err != nil {
		return err
	}

	infof("Retrieved %v to file %s", cmd.area, cmd.file)

	return nil
}

func (cmd *Get) validate() (string, error) {
	if err := cmd.command.validate(); err != nil {
		return "", err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return "", fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.url) != "" {
		return spreadsheet.ParseURL(cmd.url)
	}

	if strings.TrimSpace(cmd.spreadsheet) == "" {
		return "", fmt.Errorf("one of --spreadsheet or --url is required")
	}

	return cmd.spreadsheet, nil
}

func (cmd *Get) write(rows [][]any) error {
	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".dbudgeteer-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := spreadsheet.WriteTSV(tmp, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), cmd.file)
}
