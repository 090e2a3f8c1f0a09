package auth

import (
	"fmt"

	"golang.org/x/sys/execabs"
)

// OpenBrowser launches the platform's default browser on url without waiting for it to exit.
func OpenBrowser(url string) error {
	name, args, err := browser(url)
	if err != nil {
		return err
	}

	cmd := execabs.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	go cmd.Wait()

	return nil
}
