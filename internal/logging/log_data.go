package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// LogData collects timings and fields over the life of one request so a single
// line can be emitted when it finishes.
type LogData struct {
	mu        sync.Mutex
	timeItems map[string]int64
	dataItems map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(map[string]interface{}),
		logger:    logger,
	}
}

// WithLogData returns a copy of ctx carrying l.
func WithLogData(ctx context.Context, l *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, l)
}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	l, _ := ctx.Value(logDataKey{}).(*LogData)
	return l
}

// AddTiming starts a timer and returns the func that records it in milliseconds.
func (l *LogData) AddTiming(entryName string) func() {
	if l == nil {
		return func() {}
	}
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timeItems[entryName] = elapsed
	}
}

// AddToExistingTiming accumulates into entryName, for timings taken inside loops.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	if l == nil {
		return func() {}
	}
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timeItems[entryName] += elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(logrus.Fields, len(l.dataItems)+len(l.timeItems))
	for key, value := range l.dataItems {
		fields[key] = value
	}
	for key, value := range l.timeItems {
		fields[key] = value
	}

	return l.logger.WithFields(fields)
}
