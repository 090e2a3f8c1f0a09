package spreadsheet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/dwaki/dbudgeteer/auth"
)

const (
	spreadsheetID = "1GMYHwNHrFYrpwsmfaSX0UjlH-eZjppRsOyEMzIEfwXU"
	area          = "Savings!B1:C11"
)

type authorizer struct {
	err   error
	calls int
}

func (a *authorizer) Client(ctx context.Context, userID string) (*http.Client, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}

	return http.DefaultClient, nil
}

func sheetsAPI(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		prefix := fmt.Sprintf("/v4/spreadsheets/%v/values/", spreadsheetID)
		if !strings.HasPrefix(rq.URL.Path, prefix) {
			http.NotFound(w, rq)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestReadRange(t *testing.T) {
	srv := sheetsAPI(t, http.StatusOK, `{
	  "range": "Savings!B1:C11",
	  "majorDimension": "ROWS",
	  "values": [
	    ["Month", "Saved"],
	    ["January", 120.5],
	    ["February", 80],
	    ["January", 120.5],
	    ["Total", "201", true]
	  ]
	}`)

	authoriser := authorizer{}
	reader := NewReader(&authoriser, "user", option.WithEndpoint(srv.URL+"/"))

	rows, err := reader.ReadRange(context.Background(), spreadsheetID, area)
	require.NoError(t, err)

	expected := [][]any{
		{"Month", "Saved"},
		{"January", 120.5},
		{"February", float64(80)},
		{"January", 120.5},
		{"Total", "201", true},
	}

	assert.Equal(t, expected, rows)
	assert.Equal(t, 1, authoriser.calls)
}

func TestReadRangeEmpty(t *testing.T) {
	srv := sheetsAPI(t, http.StatusOK, `{"range": "Savings!B1:C11", "majorDimension": "ROWS"}`)

	rows, err := NewReader(&authorizer{}, "user", option.WithEndpoint(srv.URL+"/")).ReadRange(context.Background(), spreadsheetID, area)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRangeErrors(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{http.StatusBadRequest, ErrInvalidRange},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrIO},
	}

	for _, test := range tests {
		t.Run(http.StatusText(test.status), func(t *testing.T) {
			body := fmt.Sprintf(`{"error": {"code": %d, "message": "Unable to parse range: Savings!B1:C11x", "status": "X"}}`, test.status)
			srv := sheetsAPI(t, test.status, body)

			_, err := NewReader(&authorizer{}, "user", option.WithEndpoint(srv.URL+"/")).ReadRange(context.Background(), spreadsheetID, area)

			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestReadRangeUnauthorised(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"denied", fmt.Errorf("%w (access_denied)", auth.ErrAuthorizationDenied), ErrUnauthorized},
		{"state mismatch", auth.ErrStateMismatch, ErrUnauthorized},
		{"listener", fmt.Errorf("%w: unable to bind redirect listener", auth.ErrIO), ErrIO},
		{"client secrets", fmt.Errorf("%w: credentials.json", auth.ErrResourceNotFound), ErrIO},
		{"timeout", fmt.Errorf("timed out waiting for authorization (%w)", context.DeadlineExceeded), context.DeadlineExceeded},
		{"cancelled", context.Canceled, context.Canceled},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewReader(&authorizer{err: test.err}, "user").ReadRange(context.Background(), spreadsheetID, area)

			assert.ErrorIs(t, err, test.expected)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestReadRangeTimeoutIsNotUnauthorised(t *testing.T) {
	err := fmt.Errorf("timed out waiting for authorization (%w)", context.DeadlineExceeded)

	_, err = NewReader(&authorizer{err: err}, "user").ReadRange(context.Background(), spreadsheetID, area)

	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrIO)
}

func TestReadRangeWithMissingParameters(t *testing.T) {
	authoriser := authorizer{}
	reader := NewReader(&authoriser, "user")

	_, err := reader.ReadRange(context.Background(), "", area)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = reader.ReadRange(context.Background(), spreadsheetID, " ")
	assert.ErrorIs(t, err, ErrInvalidRange)

	assert.Equal(t, 0, authoriser.calls, "should not authorise for an invalid query")
}

func TestReadRangeWithUnreachableAPI(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/"
	srv.Close()

	_, err := NewReader(&authorizer{}, "user", option.WithEndpoint(endpoint)).ReadRange(context.Background(), spreadsheetID, area)

	assert.ErrorIs(t, err, ErrIO)
}
