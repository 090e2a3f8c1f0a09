package commands

const (
	_etc = "/usr/local/etc/com.github.dwaki.dbudgeteer"
	_var = "/usr/local/var/com.github.dwaki.dbudgeteer"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
	DEFAULT_TOKENS      = _var + "/.google"
)
