package core

import "github.com/golang/glog"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// GlogLogger routes raytracer logging to glog at a fixed verbosity
type GlogLogger struct {
	Level glog.Level
}

// NewGlogLogger creates a logger that writes through glog.V(level)
func NewGlogLogger(level glog.Level) *GlogLogger {
	return &GlogLogger{Level: level}
}

// Printf implements Logger
func (l *GlogLogger) Printf(format string, args ...interface{}) {
	glog.V(l.Level).Infof(format, args...)
}
