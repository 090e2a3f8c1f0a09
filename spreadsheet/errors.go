package spreadsheet

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/dwaki/dbudgeteer/auth"
)

var (
	ErrInvalidRange = errors.New("invalid spreadsheet range")
	ErrUnauthorized = errors.New("not authorised")
	ErrNotFound     = errors.New("spreadsheet not found")
	ErrSecurity     = errors.New("transport security failure")
	ErrIO           = errors.New("I/O failure")
)

// classify wraps an error returned by the Google API client with the matching error kind.
func classify(err error) error {
	var apiErr *googleapi.Error
	var retrieveErr *oauth2.RetrieveError
	var certErr *tls.CertificateVerificationError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError

	switch {
	case errors.As(err, &apiErr):
		switch apiErr.Code {
		case http.StatusBadRequest:
			return fmt.Errorf("%w (%v)", ErrInvalidRange, apiErr.Message)

		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w (%v)", ErrUnauthorized, apiErr.Message)

		case http.StatusNotFound:
			return fmt.Errorf("%w (%v)", ErrNotFound, apiErr.Message)
		}

	case errors.As(err, &retrieveErr):
		return fmt.Errorf("%w (%v)", ErrUnauthorized, err)

	case errors.As(err, &certErr), errors.As(err, &authorityErr), errors.As(err, &hostnameErr):
		return fmt.Errorf("%w (%v)", ErrSecurity, err)
	}

	return fmt.Errorf("%w (%v)", ErrIO, err)
}

// unauthorised maps an authorization failure onto the matching error kind. Only a refused
// or forged grant is reported as ErrUnauthorized, cancellation and timeouts pass through
// unchanged and everything else (listener, exchange or store failures) is an I/O failure.
func unauthorised(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, auth.ErrAuthorizationDenied), errors.Is(err, auth.ErrStateMismatch):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)

	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}
