// Package dlog implements the leveled diagnostic logger. All diagnostics go
// to standard error so that they never mix with the concatenated file data
// on standard output. Log lines are pipe-delimited:
//
//	ECAT|20260825-153412|WARN|Unable to stat file|/var/log/foo.log|...
//
// Every log method returns the formatted message so that callers can reuse
// it, e.g. for wrapping into an error value.
package dlog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/snonux/ecat/internal/io/pool"
)

// Level controls which messages a DLog emits.
type Level int

// Log levels, from most to least severe.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// ParseLevel converts a level name such as "warn" or "DEBUG" to a Level.
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return LevelWarn, fmt.Errorf("unknown log level '%s'", name)
}

// String returns the level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// DLog writes pipe-delimited diagnostic lines to a single writer. A mutex
// serializes writes since the signal handler logs from its own goroutine.
type DLog struct {
	mutex  sync.Mutex
	writer io.Writer
	level  Level
}

// Common is the logger used throughout ecat.
var Common = New(os.Stderr, LevelWarn)

// New returns a DLog writing to the given writer at the given level.
func New(writer io.Writer, level Level) *DLog {
	return &DLog{writer: writer, level: level}
}

// Start sets the log level of the common logger. Called once after the
// configuration has been assembled.
func Start(level Level) {
	Common.SetLevel(level)
}

// SetLevel changes the maximum emitted level.
func (d *DLog) SetLevel(level Level) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.level = level
}

// SetWriter redirects the log output, used by tests.
func (d *DLog) SetWriter(writer io.Writer) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.writer = writer
}

// Error logs at error level and returns the formatted message.
func (d *DLog) Error(args ...interface{}) string {
	return d.log(LevelError, args)
}

// Warn logs at warning level and returns the formatted message.
func (d *DLog) Warn(args ...interface{}) string {
	return d.log(LevelWarn, args)
}

// Info logs at info level and returns the formatted message.
func (d *DLog) Info(args ...interface{}) string {
	return d.log(LevelInfo, args)
}

// Debug logs at debug level and returns the formatted message.
func (d *DLog) Debug(args ...interface{}) string {
	return d.log(LevelDebug, args)
}

// Trace logs at trace level and returns the formatted message.
func (d *DLog) Trace(args ...interface{}) string {
	return d.log(LevelTrace, args)
}

// FatalPanic logs at error level regardless of the configured level and
// panics with the formatted message. Reserved for unrecoverable states.
func (d *DLog) FatalPanic(args ...interface{}) {
	message := d.message(args)
	d.write(LevelError, message)
	panic(message)
}

func (d *DLog) log(level Level, args []interface{}) string {
	message := d.message(args)
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if level > d.level {
		return message
	}
	d.writeLocked(level, message)
	return message
}

func (d *DLog) write(level Level, message string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.writeLocked(level, message)
}

func (d *DLog) writeLocked(level Level, message string) {
	buf := pool.BytesBuffer.Get().(*bytes.Buffer)
	defer pool.RecycleBytesBuffer(buf)

	buf.WriteString("ECAT|")
	buf.WriteString(time.Now().Format("20060102-150405"))
	buf.WriteByte('|')
	buf.WriteString(level.String())
	buf.WriteByte('|')
	buf.WriteString(message)
	buf.WriteByte('\n')
	d.writer.Write(buf.Bytes())
}

func (d *DLog) message(args []interface{}) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(args[0])
	}
	buf := pool.BytesBuffer.Get().(*bytes.Buffer)
	defer pool.RecycleBytesBuffer(buf)
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte('|')
		}
		fmt.Fprint(buf, arg)
	}
	return buf.String()
}
