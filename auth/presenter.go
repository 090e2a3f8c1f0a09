package auth

import (
	"fmt"
	"io"
	"os"

	"github.com/dwaki/dbudgeteer/log"
)

// Presenter shows the authorization URL to the end user.
type Presenter interface {
	Present(url string)
}

// Console prints the authorization URL and then tries to open it in the default browser.
// The printed URL is the fallback, so a browser that cannot be opened is only a warning.
type Console struct {
	out  io.Writer
	open func(url string) error
}

func NewConsole(out io.Writer, browser bool) *Console {
	if out == nil {
		out = os.Stdout
	}

	c := Console{
		out: out,
	}

	if browser {
		c.open = OpenBrowser
	}

	return &c
}

func (c *Console) Present(url string) {
	fmt.Fprintln(c.out, "Please open the following address in your browser:")
	fmt.Fprintf(c.out, "  %v\n", url)

	if c.open == nil {
		return
	}

	fmt.Fprintln(c.out, "Attempting to open that address in the default browser now...")

	if err := c.open(url); err != nil {
		log.Warnf("unable to open browser (%v)", err)
	}
}
