package systems

import (
	"fmt"
	"io"
	"sync"
)

// MessageLog stores diagnostic messages.
// It is shared by every generation session, so access is serialized.
type MessageLog struct {
	mu          sync.Mutex
	Messages    []string
	MaxMessages int
	echo        io.Writer
}

// Global message log instance (singleton)
var (
	globalMessageLog *MessageLog
	messageLogOnce   sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	messageLogOnce.Do(func() {
		globalMessageLog = NewMessageLog()
	})
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// SetEcho mirrors every new message to w (nil disables)
func (ml *MessageLog) SetEcho(w io.Writer) {
	ml.mu.Lock()
	ml.echo = w
	ml.mu.Unlock()
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.echo != nil {
		fmt.Fprintln(ml.echo, message)
	}

	GetDebugLog().Add(message)
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...any) {
	ml.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.Messages)
}

// RecentMessages gets the n most recent messages
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		// Get messages from newest to oldest
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}
