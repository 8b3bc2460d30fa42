package utils

import (
	"strings"

	logrus "github.com/sirupsen/logrus"
)

// LogEvent emits one structured application event line.
func LogEvent(requestID, module, action, message string) {
	logrus.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
