// Package kgerr defines the error taxonomy shared by the attackkg
// packages: sentinel errors for the common failure conditions, error
// kinds, and a structured Error carrying the failed operation and its
// category while keeping the underlying cause reachable through
// errors.Unwrap.
package kgerr
