// Package observability defines the small logging surface the quote
// pipeline reports through. Hosts plug in their own logger; the default
// discards everything.
package observability

import (
	"fmt"
	"log"
	"strings"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field          { return stringField{key, value} }
func Int(key string, value int) Field         { return intField{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Error(key string, err error) Field       { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// StdLogger writes through the standard library logger. Used by the demos;
// library code never constructs it.
type StdLogger struct {
	bound []Field
}

func (l StdLogger) Debug(msg string, fields ...Field) { l.emit("DEBUG", msg, fields) }
func (l StdLogger) Info(msg string, fields ...Field)  { l.emit("INFO", msg, fields) }
func (l StdLogger) Warn(msg string, fields ...Field)  { l.emit("WARN", msg, fields) }
func (l StdLogger) Error(msg string, fields ...Field) { l.emit("ERROR", msg, fields) }

func (l StdLogger) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(l.bound)+len(fields))
	bound = append(bound, l.bound...)
	bound = append(bound, fields...)
	return StdLogger{bound: bound}
}

func (l StdLogger) emit(level, msg string, fields []Field) {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteByte(' ')
	sb.WriteString(msg)
	for _, f := range l.bound {
		fmt.Fprintf(&sb, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key(), f.Value())
	}
	log.Print(sb.String())
}

// Standard metric names emitted by the pipeline.
const (
	MetricGenerateTime  = "quote.generate.duration"
	MetricPageCount     = "quote.pages.count"
	MetricAssetFetch    = "quote.asset.fetch.duration"
	MetricCatalogReload = "catalog.reload.count"
)
