package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState keeps the latest user-facing notification.
// It is replaced by the next one and cleared on the next keypress.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a notification with the given level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Info is shorthand for Add(LevelInfo, message).
func (s *NotificationState) Info(message string) {
	s.Add(LevelInfo, message)
}

// Error is shorthand for Add(LevelError, message).
func (s *NotificationState) Error(message string) {
	s.Add(LevelError, message)
}

// Clear removes the notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification being shown.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasAny returns true if a notification is being shown.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}
