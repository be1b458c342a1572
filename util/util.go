package util

import (
	"github.com/0xERR0R/regdomain/log"

	"github.com/sirupsen/logrus"
)

// FatalOnError logs the error and terminates the process if err is not nil
func FatalOnError(message string, err error) {
	if err != nil {
		log.Log().Fatal(message, err)
	}
}

// LogOnError logs the error with the given entry if err is not nil
func LogOnError(logger *logrus.Entry, message string, err error) {
	if err != nil {
		logger.Error(message, err)
	}
}
