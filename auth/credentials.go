package auth

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// LoadClientConfig reads the OAuth client secrets JSON (as downloaded from the Google Cloud
// console) from the resource path in fsys and returns the client configuration for the
// requested scopes. The redirect URL is left for the authorizer to fill in per attempt.
func LoadClientConfig(fsys fs.FS, path string, scopes ...string) (*oauth2.Config, error) {
	b, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("%w: error reading %v (%v)", ErrIO, path, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid client credentials %v (%w)", path, err)
	}

	return config, nil
}
