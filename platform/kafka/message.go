package kafka

import "time"

// Message is an outgoing record. Topic is chosen by the producer.
type Message struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}
