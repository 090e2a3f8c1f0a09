package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/dwaki/dbudgeteer/config"
)

func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().String()
}

func TestServeExecute(t *testing.T) {
	credentialsFile, tokens := stored(t, "user")

	headers := make(chan string, 1)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		select {
		case headers <- rq.Header.Get("Authorization"):
		default:
		}

		if !strings.HasPrefix(rq.URL.Path, fmt.Sprintf("/v4/spreadsheets/%v/values/", config.DefaultSpreadsheet)) {
			http.NotFound(w, rq)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"range": "Savings!B1:C11", "majorDimension": "ROWS", "values": [["Month", "Saved"], ["January", 120.5]]}`)
	}))
	defer api.Close()

	cmd := NewServe(testConfig())
	cmd.credentials = credentialsFile
	cmd.tokens = tokens
	cmd.bind = freeAddress(t)
	cmd.options = []option.ClientOption{option.WithEndpoint(api.URL + "/")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		errs <- cmd.Execute(ctx, &Options{})
	}()

	var response *http.Response
	require.Eventually(t, func() bool {
		rs, err := http.Get("http://" + cmd.bind + "/test")
		if err != nil {
			return false
		}

		response = rs
		return true
	}, 5*time.Second, 20*time.Millisecond)

	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	body := struct {
		Spreadsheet string  `json:"spreadsheet"`
		Range       string  `json:"range"`
		Values      [][]any `json:"values"`
	}{}

	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, config.DefaultSpreadsheet, body.Spreadsheet)
	assert.Equal(t, config.DefaultRange, body.Range)
	assert.Equal(t, [][]any{{"Month", "Saved"}, {"January", 120.5}}, body.Values)
	assert.Equal(t, "Bearer ya29.stored", <-headers)

	cancel()

	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not shut down")
	}
}
