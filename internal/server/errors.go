// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoHandler    = errors.New("no http handler is provided")
	ErrBind         = errors.New("error binding listen address")
	ErrNotListening = errors.New("server is not listening")
	ErrShutdown     = errors.New("error shutting down http server")
)
