// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the startup sequencer of the blog API server.
//
// [App.Run] moves through the phases in a fixed order:
//
//	created -> relations -> middleware_registered ->
//	database_authenticated -> schema_synced -> listening -> stopped
//
// Each datastore step is awaited before the next one starts, and the HTTP
// listener is bound only after both datastore steps have completed.
//
// How datastore failures are handled depends on config.Startup.RequireDatabase:
//
//   - false (degraded mode): authenticate and sync failures are logged, the
//     datastore is reported as unavailable on /health and the server still
//     binds. A background probe keeps pinging the database and syncs the
//     schema once it becomes reachable.
//   - true (strict mode): the first datastore failure moves the sequencer
//     to the failed phase and Run returns an error wrapping
//     store.ErrDatabaseUnavailable before anything is bound.
//
// Bind errors are fatal in both modes.
package app
