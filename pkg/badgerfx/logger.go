package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger routes badger's printf-style output into a sugared zap logger.
// Badger is chatty at info level (compactions, value log GC), so info is
// demoted to debug.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	if l == nil {
		l = zap.NewNop()
	}

	return &zapLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(format, a...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.sugar.Error(fmt.Sprintf(format, a...))
}

var _ badger.Logger = (*zapLogger)(nil)
