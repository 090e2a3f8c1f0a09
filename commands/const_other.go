//go:build !linux && !darwin && !windows

package commands

const (
	_etc = "/usr/local/etc/dbudgeteer"
	_var = "/usr/local/var/dbudgeteer"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
	DEFAULT_TOKENS      = _var + "/.google"
)
