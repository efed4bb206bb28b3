// Package messaging provides a broker-agnostic API for publishing and
// consuming domain events.
//
// Two drivers are available: NATS core subjects and Kafka topics through
// segmentio/kafka-go. Business code depends on Publisher or Consumer only.
package messaging
