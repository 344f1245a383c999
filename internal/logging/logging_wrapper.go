package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a plain handler that reports failure through its error
// return. Every request gets its own LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("path", req.URL.Path)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Debugf("Handler.%v.Complete", loggingName)
	}
}

// Middleware attaches a LogData to every huma operation and logs it once the
// handler returns.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		operationID := "unknown"
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		if requestID := ctx.Header(RequestIDHeader); requestID != "" {
			logData.AddData("requestID", requestID)
		}

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		entry := logData.Log()
		switch {
		case status >= http.StatusInternalServerError:
			entry.Errorf("Handler.%v.Error", operationID)
		case status >= http.StatusBadRequest:
			entry.Warnf("Handler.%v.Rejected", operationID)
		default:
			entry.Infof("Handler.%v.Complete", operationID)
		}
	}
}

const RequestIDHeader = "X-Request-ID"
