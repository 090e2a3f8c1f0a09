package commands

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

	"github.com/dwaki/dbudgeteer/config"
)

func TestRevisionExecute(t *testing.T) {
	credentialsFile, tokens := stored(t, "user.drive")

	paths := make(chan string, 1)
	headers := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		select {
		case paths <- rq.URL.Path:
		default:
		}
		select {
		case headers <- rq.Header.Get("Authorization"):
		default:
		}

		if !strings.HasSuffix(rq.URL.Path, fmt.Sprintf("/files/%v/revisions", config.DefaultSpreadsheet)) {
			http.NotFound(w, rq)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"revisions": [{"id": "101", "modifiedTime": "2024-03-01T10:00:00.000Z"}, {"id": "102", "modifiedTime": "2024-03-02T10:00:00.000Z"}]}`)
	}))
	defer srv.Close()

	cmd := NewRevision(testConfig())
	cmd.credentials = credentialsFile
	cmd.tokens = tokens
	cmd.url = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%v/edit#gid=0", config.DefaultSpreadsheet)
	cmd.options = []option.ClientOption{option.WithEndpoint(srv.URL + "/")}

	require.NoError(t, cmd.Execute(context.Background(), &Options{}))

	assert.Contains(t, <-paths, config.DefaultSpreadsheet)
	assert.Equal(t, "Bearer ya29.stored", <-headers)
}

func TestRevisionExecuteWithInvalidURL(t *testing.T) {
	credentialsFile, tokens := stored(t, "user.drive")

	cmd := NewRevision(testConfig())
	cmd.credentials = credentialsFile
	cmd.tokens = tokens
	cmd.url = "https://example.com/spreadsheets/d/xyz"

	assert.Error(t, cmd.Execute(context.Background(), &Options{}))
}
