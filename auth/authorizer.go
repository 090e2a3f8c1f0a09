package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dwaki/dbudgeteer/log"
)

// A credential expiring within this margin is not reused unless it can be refreshed.
const ExpiryMargin = 60 * time.Second

const DefaultTimeout = 5 * time.Minute

// Authorizer runs the OAuth 2.0 authorization code flow for an installed application.
// Handshakes are serialised: the redirect listener occupies a single local port.
type Authorizer struct {
	config    *oauth2.Config
	store     Store
	receiver  Receiver
	presenter Presenter
	timeout   time.Duration
	now       func() time.Time
	guard     sync.Mutex
}

// NewAuthorizer returns an Authorizer for the client configuration. A zero timeout waits
// for the redirect until the context is cancelled.
func NewAuthorizer(config *oauth2.Config, store Store, receiver Receiver, presenter Presenter, timeout time.Duration) *Authorizer {
	return &Authorizer{
		config:    config,
		store:     store,
		receiver:  receiver,
		presenter: presenter,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Authorize returns the stored credential for userID if it is still usable, otherwise it
// runs the browser handshake and stores the credential it obtains.
func (a *Authorizer) Authorize(ctx context.Context, userID string) (token *oauth2.Token, err error) {
	a.guard.Lock()
	defer a.guard.Unlock()

	defer func() {
		if e := a.receiver.Stop(); e != nil {
			log.Warnf("error stopping redirect listener (%v)", e)
		}
	}()

	// ... stored credential
	if token, err := a.store.Load(userID); err == nil {
		if usable(token, a.now()) {
			log.Debugf("using stored credential for '%v'", userID)
			return token, nil
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: error loading credential for '%v' (%v)", ErrIO, userID, err)
	}

	// ... handshake
	redirect, err := a.receiver.Start()
	if err != nil {
		return nil, err
	}

	config := a.configFor(redirect)
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	a.presenter.Present(url)

	callback, err := a.wait(ctx)
	if err != nil {
		return nil, err
	}

	if callback.State != state {
		return nil, ErrStateMismatch
	}

	token, err = config.Exchange(ctx, callback.Code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange failed (%v)", ErrIO, err)
	}

	if err := a.store.Save(userID, token); err != nil {
		return nil, fmt.Errorf("%w: error storing credential for '%v' (%v)", ErrIO, userID, err)
	}

	log.Infof("authorised '%v'", userID)

	return token, nil
}

// Client returns an HTTP client that authenticates requests with the credential for userID,
// refreshing the access token as required. Refreshed credentials are saved to the store.
func (a *Authorizer) Client(ctx context.Context, userID string) (*http.Client, error) {
	token, err := a.Authorize(ctx, userID)
	if err != nil {
		return nil, err
	}

	source := persistent{
		source: a.config.TokenSource(ctx, token),
		store:  a.store,
		userID: userID,
		last:   token.AccessToken,
	}

	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, &source)), nil
}

func (a *Authorizer) wait(ctx context.Context) (Callback, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	callback, err := a.receiver.WaitForCode(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return Callback{}, fmt.Errorf("timed out waiting for authorization (%w)", err)
	}

	return callback, err
}

// configFor returns a copy of the client configuration bound to the redirect URI. The same
// copy builds the authorization URL and exchanges the code so the two URIs are identical.
func (a *Authorizer) configFor(redirect string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.config.ClientID,
		ClientSecret: a.config.ClientSecret,
		Endpoint:     a.config.Endpoint,
		Scopes:       a.config.Scopes,
		RedirectURL:  redirect,
	}
}

// persistent saves each new access token issued by the underlying source. A failed save is
// logged and the token is still used for the request.
type persistent struct {
	source oauth2.TokenSource
	store  Store
	userID string
	last   string
	guard  sync.Mutex
}

func (p *persistent) Token() (*oauth2.Token, error) {
	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	p.guard.Lock()
	defer p.guard.Unlock()

	if token.AccessToken != p.last {
		if err := p.store.Save(p.userID, token); err != nil {
			log.Warnf("error storing refreshed credential for '%v' (%v)", p.userID, err)
		} else {
			log.Debugf("stored refreshed credential for '%v'", p.userID)
			p.last = token.AccessToken
		}
	}

	return token, nil
}

func usable(token *oauth2.Token, now time.Time) bool {
	switch {
	case token == nil:
		return false

	case token.RefreshToken != "":
		return true

	case token.Expiry.IsZero():
		return true

	default:
		return token.Expiry.Sub(now) > ExpiryMargin
	}
}
