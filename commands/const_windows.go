package commands

const (
	_etc = `C:\ProgramData\dbudgeteer`
	_var = `C:\ProgramData\dbudgeteer\var`

	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
	DEFAULT_TOKENS      = _var + `\.google`
)
