package logger

import (
	glog "github.com/goliatone/go-logger/glog"
)

// GlogLogger forwards client events to a go-logger glog.Logger, flattening
// fields into key/value args in key order.
type GlogLogger struct {
	log glog.Logger
}

func NewGlogLogger(l glog.Logger) Logger {
	if l == nil {
		l = glog.Nop()
	}
	return &GlogLogger{log: l}
}

func (g *GlogLogger) Debug(msg string, fields map[string]any) {
	g.log.Debug(msg, toArgs(fields)...)
}

func (g *GlogLogger) Info(msg string, fields map[string]any) {
	g.log.Info(msg, toArgs(fields)...)
}

func (g *GlogLogger) Warn(msg string, fields map[string]any) {
	g.log.Warn(msg, toArgs(fields)...)
}

func (g *GlogLogger) Error(msg string, fields map[string]any) {
	g.log.Error(msg, toArgs(fields)...)
}

func toArgs(fields map[string]any) []any {
	args := make([]any, 0, len(fields)*2)
	for _, k := range sortedKeys(fields) {
		args = append(args, k, fields[k])
	}
	return args
}
