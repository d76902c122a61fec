// Package service contains the application-level use cases built on top of
// the pure calculator in internal/domain/calc.
//
// Services receive their dependencies through constructor injection, log
// through the request-scoped logger when one is present, and return domain
// sentinel errors unchanged so the API layer can map them with errors.Is.
package service
