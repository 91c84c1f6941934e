package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with helpers for the hospital domain.
type Logger struct {
	*logrus.Logger
}

// New creates a new logger instance. Unknown levels fall back to info.
func New(level string) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetOutput(os.Stdout)

	return &Logger{Logger: log}
}

// WithUserID creates a new logger entry with a user ID field.
func (l *Logger) WithUserID(userID string) *logrus.Entry {
	return l.Logger.WithField("user_id", userID)
}

// WithRequestID creates a new logger entry with a request ID field.
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	return l.Logger.WithField("request_id", requestID)
}

// WithAppointment creates a new logger entry with an appointment ID field.
func (l *Logger) WithAppointment(appointmentID string) *logrus.Entry {
	return l.Logger.WithField("appointment_id", appointmentID)
}

// Audit logs a user-initiated operation with its outcome.
func (l *Logger) Audit(userID, action, resource string, success bool) {
	entry := l.Logger.WithFields(logrus.Fields{
		"audit":    true,
		"user_id":  userID,
		"action":   action,
		"resource": resource,
		"success":  success,
	})

	if success {
		entry.Info("Audit event")
	} else {
		entry.Warn("Audit event failed")
	}
}

// StoreOperation logs a record store mutation.
func (l *Logger) StoreOperation(store, operation, recordID string) {
	l.Logger.WithFields(logrus.Fields{
		"store":     store,
		"operation": operation,
		"record_id": recordID,
	}).Debug("Store operation")
}

// NotificationDelivered logs a notification fan-out.
func (l *Logger) NotificationDelivered(message string, subscribers int) {
	l.Logger.WithFields(logrus.Fields{
		"notification": message,
		"subscribers":  subscribers,
	}).Debug("Notification delivered")
}
