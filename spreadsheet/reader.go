// Package spreadsheet reads cell ranges and revision history from Google Sheets.
package spreadsheet

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/dwaki/dbudgeteer/log"
)

// Authorizer supplies an authenticated HTTP client for a user.
type Authorizer interface {
	Client(ctx context.Context, userID string) (*http.Client, error)
}

// Reader issues read-only value queries against the Sheets API on behalf of a single user.
type Reader struct {
	auth    Authorizer
	user    string
	options []option.ClientOption
}

func NewReader(auth Authorizer, user string, options ...option.ClientOption) *Reader {
	return &Reader{
		auth:    auth,
		user:    user,
		options: options,
	}
}

// ReadRange returns the rows of an A1 notation range, in the order returned by the API.
// Cells are loosely typed (strings, numbers, booleans).
func (r *Reader) ReadRange(ctx context.Context, spreadsheetID string, area string) ([][]any, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("%w: missing spreadsheet ID", ErrInvalidRange)
	}

	if strings.TrimSpace(area) == "" {
		return nil, fmt.Errorf("%w: missing range", ErrInvalidRange)
	}

	client, err := r.auth.Client(ctx, r.user)
	if err != nil {
		return nil, unauthorised(err)
	}

	options := append([]option.ClientOption{option.WithHTTPClient(client)}, r.options...)
	google, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	log.Debugf("Spreadsheet - ID:%s  range:%s", spreadsheetID, area)

	response, err := google.Spreadsheets.Values.Get(spreadsheetID, area).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return response.Values, nil
}
