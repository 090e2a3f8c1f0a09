package commands

import (
	"context"
	"flag"
	"fmt"
)

// Help displays the list of commands, or the detailed help for a single command.
type Help struct {
	cli []Command
}

func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help for a command"
}

func (h *Help) Usage() string {
	return "[command]"
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help [command]\n", APP)
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h *Help) Execute(ctx context.Context, options *Options) error {
	if args := flag.Args(); len(args) > 1 {
		if c := Find(h.cli, args[1]); c != nil {
			c.Help()
			return nil
		}

		return fmt.Errorf("invalid command '%v'", args[1])
	}

	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range h.cli {
		fmt.Printf("    %-10s %s\n", c.Name(), c.Description())
	}

	fmt.Printf("    %-10s %s\n", h.Name(), h.Description())
	fmt.Println()

	return nil
}
