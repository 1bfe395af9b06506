package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the logging interface used by the latch packages. It is a subset of the
// zap.SugaredLogger API plus named subloggers.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatal(args ...interface{})

	Sublogger(subname string) Logger
	Desugar() *zap.Logger
	Sync() error
}

type impl struct {
	name string
	zap  *zap.SugaredLogger
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}
	// zap joins names with a dot itself, so only the new section is appended.
	return &impl{name: newName, zap: imp.zap.Named(subname)}
}

func (imp *impl) Desugar() *zap.Logger {
	return imp.zap.Desugar()
}

func (imp *impl) Sync() error {
	return imp.zap.Sync()
}

func (imp *impl) Debug(args ...interface{}) { imp.zap.Debug(args...) }

func (imp *impl) Debugf(template string, args ...interface{}) { imp.zap.Debugf(template, args...) }

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.zap.Debugw(msg, keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) { imp.zap.Info(args...) }

func (imp *impl) Infof(template string, args ...interface{}) { imp.zap.Infof(template, args...) }

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.zap.Infow(msg, keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) { imp.zap.Warn(args...) }

func (imp *impl) Warnf(template string, args ...interface{}) { imp.zap.Warnf(template, args...) }

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.zap.Warnw(msg, keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) { imp.zap.Error(args...) }

func (imp *impl) Errorf(template string, args ...interface{}) { imp.zap.Errorf(template, args...) }

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.zap.Errorw(msg, keysAndValues...)
}

// Fatal logs as an error then exits the process.
func (imp *impl) Fatal(args ...interface{}) { imp.zap.Fatal(args...) }
