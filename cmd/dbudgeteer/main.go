package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dwaki/dbudgeteer/commands"
	"github.com/dwaki/dbudgeteer/config"
	"github.com/dwaki/dbudgeteer/log"
)

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	log.SetDebug(options.Debug)

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("\nError loading configuration: %v\n\n", err)
		os.Exit(1)
	}

	cli := []commands.Command{
		commands.NewServe(cfg),
		commands.NewAuthorise(cfg),
		commands.NewGet(cfg),
		commands.NewRevision(cfg),
		&commands.Version{},
	}

	help := commands.NewHelp(cli)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	args := flag.Args()
	if len(args) == 0 {
		help.Execute(ctx, &options)
		os.Exit(1)
	}

	cmd := commands.Find(append(cli, help), args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command: %v\n", args[0])
		help.Execute(ctx, &options)
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(ctx, &options); err != nil {
		cancel()
		log.Fatalf("ERROR: %v", err)
	}
}
