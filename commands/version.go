package commands

import (
	"context"
	"flag"
	"fmt"
)

const VERSION = "v0.1.0"

// Version prints the dbudgeteer release.
type Version struct {
}

func (v *Version) Name() string {
	return "version"
}

func (v *Version) Description() string {
	return "Prints the dbudgeteer release"
}

func (v *Version) Usage() string {
	return ""
}

func (v *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Printf("    Prints the release tag of this %s build (currently %s) and exits.\n", APP, VERSION)
	fmt.Println()
}

func (v *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (v *Version) Execute(context.Context, *Options) error {
	fmt.Println(VERSION)

	return nil
}
