// Package api exposes the call-scoring workflows the CLI drives.
//
// Each workflow takes a request struct carrying the loaded configuration,
// opens whatever stores it needs, and returns a plain result the caller can
// render as a table or JSON. Commands stay thin; behavior lives here.
package api
