package auth

import (
	"os"
)

func browser(url string) (string, []string, error) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return "", nil, ErrNoDesktop
	}

	return "xdg-open", []string{url}, nil
}
