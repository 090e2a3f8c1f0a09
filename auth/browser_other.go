//go:build !linux && !darwin && !windows

package auth

func browser(url string) (string, []string, error) {
	return "", nil, ErrNoDesktop
}
