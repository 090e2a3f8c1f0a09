package auth

import (
	"errors"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrIO                  = errors.New("I/O failure")
	ErrNotFound            = errors.New("credential not found")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrStateMismatch       = errors.New("authorization state mismatch")
	ErrReceiverStarted     = errors.New("redirect listener already started")
	ErrReceiverStopped     = errors.New("redirect listener not running")
	ErrNoDesktop           = errors.New("no desktop environment available")
)
