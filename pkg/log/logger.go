package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level controls logger verbosity.
type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = map[string]Level{
	"debug":   Debug,
	"info":    Info,
	"notice":  Notice,
	"warning": Warning,
	"error":   Error,
}

// ErrInvalidLevel is returned for unknown level names and malformed
// level specs.
var ErrInvalidLevel = errors.New("invalid log level")

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentSink    io.Writer
	defaultLevel   = Notice
	moduleLevels   = map[string]Level{}
)

// Logger is implemented by the named loggers returned by New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with the given module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to sink. The default level and the
// per-module levels are kept.
func SetSink(sink io.Writer) {
	currentSink = sink
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(toLoggingLevel(defaultLevel), "")
	for module, level := range moduleLevels {
		leveledBackend.SetLevel(toLoggingLevel(level), module)
	}
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity for modules without their own level.
func SetLevel(level Level) {
	defaultLevel = level
	leveledBackend.SetLevel(toLoggingLevel(level), "")
}

// SetModuleLevel sets the verbosity of a single module, such as "bvh" or
// "renderer", regardless of the default level.
func SetModuleLevel(module string, level Level) {
	moduleLevels[module] = level
	leveledBackend.SetLevel(toLoggingLevel(level), module)
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Notice, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return level, nil
}

// Configure applies a comma separated level spec. A bare level sets the
// default and module=level pairs override single modules, for example
// "info,bvh=debug". Nothing is applied when the spec is malformed.
func Configure(spec string) error {
	type override struct {
		module string
		level  Level
	}
	var (
		def       *Level
		overrides []override
	)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		module, name, found := strings.Cut(part, "=")
		if !found {
			level, err := ParseLevel(part)
			if err != nil {
				return err
			}
			def = &level
			continue
		}
		module = strings.TrimSpace(module)
		if module == "" {
			return fmt.Errorf("%w: missing module in %q", ErrInvalidLevel, part)
		}
		level, err := ParseLevel(name)
		if err != nil {
			return err
		}
		overrides = append(overrides, override{module, level})
	}

	if def != nil {
		SetLevel(*def)
	}
	for _, o := range overrides {
		SetModuleLevel(o.module, o.level)
	}
	return nil
}

// ResetModuleLevels drops every per-module level.
func ResetModuleLevels() {
	moduleLevels = map[string]Level{}
	SetSink(currentSink)
}

func toLoggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
