package service

import "quran-reader/internal/domain"

// LogNotifier implements the domain.Notifier interface by writing
// notifications to the application log. The handler layer additionally echoes
// the message in mutation responses so a client can surface it as a toast.
type LogNotifier struct {
	logger domain.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger domain.Logger) domain.Notifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info("Notification", "kind", "success", "message", msg)
}

func (n *LogNotifier) Error(msg string) {
	n.logger.Warn("Notification", "kind", "error", "message", msg)
}
