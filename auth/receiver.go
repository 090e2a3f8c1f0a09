package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/netutil"

	"github.com/dwaki/dbudgeteer/log"
)

const (
	DefaultRedirectHost = "localhost"
	DefaultRedirectPort = 8090
	DefaultCallbackPath = "/Callback"

	maxConnections = 4
)

// Receiver captures the authorization code from the OAuth redirect.
type Receiver interface {
	Start() (string, error)
	WaitForCode(ctx context.Context) (Callback, error)
	Stop() error
}

// Callback is the query received on the redirect URI.
type Callback struct {
	Code  string
	State string
}

type result struct {
	callback Callback
	err      error
}

// LocalReceiver is a Receiver that runs a short-lived HTTP server on a fixed local port.
type LocalReceiver struct {
	Host string
	Port int
	Path string

	server   *http.Server
	listener net.Listener
	received chan result
	once     *sync.Once
	guard    sync.Mutex
}

func NewLocalReceiver(host string, port int) *LocalReceiver {
	return &LocalReceiver{
		Host: host,
		Port: port,
		Path: DefaultCallbackPath,
	}
}

// Start binds the listener and returns the redirect URI for the bound address.
func (r *LocalReceiver) Start() (string, error) {
	r.guard.Lock()
	defer r.guard.Unlock()

	if r.listener != nil {
		return "", ErrReceiverStarted
	}

	host := r.Host
	if host == "" {
		host = DefaultRedirectHost
	}

	path := r.Path
	if path == "" {
		path = DefaultCallbackPath
	}

	bind := net.JoinHostPort(host, strconv.Itoa(r.Port))
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return "", fmt.Errorf("%w: unable to bind redirect listener to %v (%v)", ErrIO, bind, err)
	}

	port := listener.Addr().(*net.TCPAddr).Port
	redirect := fmt.Sprintf("http://%v%v", net.JoinHostPort(host, strconv.Itoa(port)), path)

	r.received = make(chan result, 1)
	r.once = &sync.Once{}
	r.listener = netutil.LimitListener(listener, maxConnections)

	mux := http.NewServeMux()
	mux.HandleFunc(path, r.callback(r.received, r.once))

	r.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func(srv *http.Server, l net.Listener) {
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warnf("redirect listener error (%v)", err)
		}
	}(r.server, r.listener)

	log.Debugf("redirect listener started on %v", redirect)

	return redirect, nil
}

// WaitForCode blocks until the redirect has been received or the context is done.
func (r *LocalReceiver) WaitForCode(ctx context.Context) (Callback, error) {
	r.guard.Lock()
	received := r.received
	r.guard.Unlock()

	if received == nil {
		return Callback{}, ErrReceiverStopped
	}

	select {
	case <-ctx.Done():
		return Callback{}, ctx.Err()

	case rs := <-received:
		return rs.callback, rs.err
	}
}

// Stop shuts down the listener. It is a no-op if the receiver is not running.
func (r *LocalReceiver) Stop() error {
	r.guard.Lock()
	defer r.guard.Unlock()

	if r.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.server.Shutdown(ctx)
	if err != nil {
		err = r.server.Close()
	}

	r.server = nil
	r.listener = nil
	r.received = nil
	r.once = nil

	log.Debugf("redirect listener stopped")

	return err
}

func (r *LocalReceiver) callback(received chan<- result, once *sync.Once) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		if rq.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		query := rq.URL.Query()
		code := query.Get("code")
		state := query.Get("state")
		denied := query.Get("error")

		if code == "" && denied == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			return
		}

		delivered := false
		once.Do(func() {
			delivered = true
			if denied != "" {
				received <- result{err: fmt.Errorf("%w (%v)", ErrAuthorizationDenied, denied)}
			} else {
				received <- result{callback: Callback{Code: code, State: state}}
			}
		})

		switch {
		case !delivered:
			http.Error(w, "authorization already received", http.StatusConflict)

		case denied != "":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Authorization failed (%v). You may close this window.\n", denied)

		default:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "Received verification code. You may now close this window.")
		}
	}
}
