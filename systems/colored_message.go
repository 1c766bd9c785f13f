package systems

import (
	"image/color"
	"strings"
	"sync"
)

// MessageType defines different types of messages that can appear in the debug log
type MessageType int

const (
	// MessageTypeNormal is for standard messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeGeneration is for generation summaries (gold)
	MessageTypeGeneration
	// MessageTypeAlert is for degraded results such as an exhausted quadrant pool (bright yellow)
	MessageTypeAlert
	// MessageTypeError is for errors and panics (red)
	MessageTypeError
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeGeneration:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeError:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}

// ClassifyMessage picks a message type from the text of a diagnostic
func ClassifyMessage(text string) MessageType {
	switch {
	case strings.HasPrefix(text, "Error"), strings.HasPrefix(text, "panic"):
		return MessageTypeError
	case strings.Contains(text, "exhausted"):
		return MessageTypeAlert
	case strings.HasPrefix(text, "Generated"):
		return MessageTypeGeneration
	default:
		return MessageTypeNormal
	}
}

// DebugLog keeps colored messages for the in-window debug screen
type DebugLog struct {
	mu          sync.Mutex
	Messages    []ColoredMessage
	MaxMessages int
}

var (
	globalDebugLog *DebugLog
	debugLogOnce   sync.Once
)

// GetDebugLog returns the global debug log instance
func GetDebugLog() *DebugLog {
	debugLogOnce.Do(func() {
		globalDebugLog = &DebugLog{MaxMessages: 500}
	})
	return globalDebugLog
}

// Add stores a message, classifying its color from the text
func (dl *DebugLog) Add(text string) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.Messages = append(dl.Messages, ColoredMessage{Text: text, Type: ClassifyMessage(text)})
	if len(dl.Messages) > dl.MaxMessages {
		dl.Messages = dl.Messages[len(dl.Messages)-dl.MaxMessages:]
	}
}

// Snapshot returns a copy of the stored messages, oldest first
func (dl *DebugLog) Snapshot() []ColoredMessage {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	out := make([]ColoredMessage, len(dl.Messages))
	copy(out, dl.Messages)
	return out
}
