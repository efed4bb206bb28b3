package messaging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions carries the per-driver settings; only the selected one is read.
type FactoryOptions struct {
	Kafka KafkaConfig
	NATS  NATSConfig
}

var drivers = map[string]func(FactoryOptions) (Messaging, error){
	DriverKafka: func(o FactoryOptions) (Messaging, error) { return NewKafka(o.Kafka) },
	DriverNATS:  func(o FactoryOptions) (Messaging, error) { return NewNATS(o.NATS) },
}

// NewFromDriver builds the backend registered under driver (case-insensitive).
func NewFromDriver(driver string, opts FactoryOptions) (Messaging, error) {
	build, ok := drivers[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	return build(opts)
}
