// Package uid generates identifiers: snowflake numbers for table rows and
// UUIDv7 strings for tokens, correlation IDs and object keys.
package uid

// NumberID generates unique, roughly time-ordered int64 IDs.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string IDs.
type StringID interface {
	Generate() string
}
