// Package config exposes typed, read-only access to application settings.
package config

import (
	"io"
	"time"
)

// TimeConfig reads integer values and scales them to a duration unit.
type TimeConfig interface {
	// GetMillisecond reads key as milliseconds.
	GetMillisecond(key string) time.Duration
	// GetSecond reads key as seconds.
	GetSecond(key string) time.Duration
	// GetMinute reads key as minutes.
	GetMinute(key string) time.Duration
	// GetHour reads key as hours.
	GetHour(key string) time.Duration
	// GetDay reads key as days (24h).
	GetDay(key string) time.Duration
}

// NumberConfig reads numeric values. Missing or malformed keys yield zero.
type NumberConfig interface {
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint(key string) uint
	GetUint16(key string) uint16
	GetUint32(key string) uint32
	GetUint64(key string) uint64
	GetFloat32(key string) float32
	GetFloat64(key string) float64
}

// Config defines a set of methods for retrieving configuration values of various types.
//
// Implementations return the zero value for missing keys so callers can apply
// their own defaults.
type Config interface {
	io.Closer
	TimeConfig
	NumberConfig

	// GetBool reads key as a bool.
	GetBool(key string) bool

	// GetString reads key as a string.
	GetString(key string) string

	// GetBinary reads a base64 encoded value and returns the decoded bytes.
	GetBinary(key string) []byte

	// GetArray reads a value stored as <element1>,<element2>,... Empty elements are dropped.
	GetArray(key string) []string

	// GetMap reads a value stored as <key1>:<value1>,<key2>:<value2>,...
	GetMap(key string) map[string]string
}
