package pubsub

// Client publishes aggregated summaries for downstream consumers (the AI
// commentary service chief among them). Raw sessions are never sent.
type Client interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
