// Package service provides the application-level services for managing users
// and items. Services are the single source of business rules: they validate
// input, enforce ownership, and orchestrate the stores. Expected failures are
// reported as sentinel errors (store not-found errors, domain validation
// errors) that callers check with errors.Is; the API layer maps them to HTTP
// status codes.
package service
