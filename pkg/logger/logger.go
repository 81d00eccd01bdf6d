package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

func New() Logger { return NewWithLevel("info") }

// NewWithLevel은 "debug"일 때만 Debugf를 출력해요.
func NewWithLevel(level string) Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: level == "debug"}
}

// Nop discards everything; handy in tests.
func Nop() Logger { return &stdLogger{l: log.New(io.Discard, "", 0)} }

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}
func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
