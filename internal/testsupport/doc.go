// Package testsupport provides helpers shared across tests, including
// temp-directory-backed configs, store constructors, and conversation
// builders.
package testsupport
