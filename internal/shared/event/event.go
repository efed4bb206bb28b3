// Package event holds the message contracts shared between modules.
package event

// HeaderCorrelationID carries the request correlation ID across the broker.
const HeaderCorrelationID string = "cID"
