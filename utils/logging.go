package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// LogError logs an error with callstack info that skips callerSkip many levels.
// callerSkip equal to 0 gives you info directly where LogError is called.
func LogError(logger logrus.FieldLogger, err error, errorMsg interface{}, callerSkip int, additionalInfos ...map[string]interface{}) {
	logErrorInfo(logger, err, callerSkip, additionalInfos...).Error(errorMsg)
}

func logErrorInfo(logger logrus.FieldLogger, err error, callerSkip int, additionalInfos ...map[string]interface{}) logrus.FieldLogger {
	logFields := logger

	pc, fullFilePath, line, ok := runtime.Caller(callerSkip + 2)
	if ok {
		logFields = logFields.WithFields(logrus.Fields{
			"_file":     filepath.Base(fullFilePath),
			"_function": runtime.FuncForPC(pc).Name(),
			"_line":     line,
		})
	} else {
		logFields = logFields.WithField("runtime", "Callstack cannot be read")
	}

	// record every wrapped layer below the top level error
	errIdx := 0
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		logFields = logFields.WithField(fmt.Sprintf("errInfo_%v", errIdx), cause.Error())
		errIdx++
	}

	if err != nil {
		logFields = logFields.WithField("errType", fmt.Sprintf("%T", err)).WithError(err)
	}

	for _, infoMap := range additionalInfos {
		for name, info := range infoMap {
			logFields = logFields.WithField(name, info)
		}
	}

	return logFields
}
