package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockClient records published messages instead of sending them.
type MockClient struct {
	mu        sync.Mutex
	ProjectID string
	Sent      []MockMessage
}

// MockMessage is one recorded publish.
type MockMessage struct {
	Topic EventType
	Data  any
}

var _ Client = (*MockClient)(nil)

// NewMock creates a new mock instance.
func NewMock(projectID string) *MockClient {
	return &MockClient{ProjectID: projectID}
}

func (m *MockClient) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, MockMessage{Topic: topic, Data: data})
	return nil
}

func (m *MockClient) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
