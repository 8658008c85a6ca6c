// Package domain defines the core data models, error types and interfaces
// shared across gallerysync. It contains plain types and contracts only.
package domain
