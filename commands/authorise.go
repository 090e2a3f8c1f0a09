package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/dwaki/dbudgeteer/config"
)

type Authorise struct {
	command
	config *config.Config
}

func NewAuthorise(cfg *config.Config) *Authorise {
	cmd := Authorise{
		command: newCommand(cfg),
		config:  cfg,
	}

	if cmd.tokens == "" {
		cmd.tokens = DEFAULT_TOKENS
	}

	return &cmd
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises dbudgeteer to access a Google Sheets worksheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> --tokens <dir>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the Google OAuth authorisation in a browser and stores the resulting credential in the")
	fmt.Println("  --tokens directory, for use by later 'get' and 'serve' commands.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    dbudgeteer authorise --credentials "credentials.json" --tokens ".google"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	authorizer, err := cmd.authorizer(cmd.config, cmd.config.Scopes...)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	if _, err := authorizer.Authorize(ctx, cmd.user); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	infof("Authorised '%v', credential stored in %v", cmd.user, cmd.tokens)

	return nil
}
