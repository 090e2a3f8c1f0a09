package spreadsheet

import (
	"fmt"
	"regexp"
)

var sheetsURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/([^/?#]+)(?:[/?#].*)?$`)

// ParseURL extracts the spreadsheet ID from a Google Sheets URL.
func ParseURL(url string) (string, error) {
	match := sheetsURL.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}
