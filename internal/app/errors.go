package app

import "errors"

var (
	ErrStartupFailed = errors.New("startup failed")
	ErrAlreadyRun    = errors.New("app has already been run")
)
