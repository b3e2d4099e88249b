package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}

// Options controla o nível e o formato da saída
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// ApexLogger implementa Logger sobre github.com/apex/log
type ApexLogger struct {
	entry log.Interface
}

// NewLogger cria uma nova instância de Logger
func NewLogger(opts Options) (Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var handler log.Handler
	switch strings.ToLower(opts.Format) {
	case "", "json":
		handler = json.New(out)
	case "text":
		handler = text.New(out)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	return FromHandler(handler, level), nil
}

// FromHandler cria um Logger com um handler apex já construído
func FromHandler(handler log.Handler, level log.Level) Logger {
	return &ApexLogger{entry: &log.Logger{Handler: handler, Level: level}}
}

// Info registra uma mensagem de informação
func (l *ApexLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Info(msg)
}

// Error registra uma mensagem de erro
func (l *ApexLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Error(msg)
}

// Debug registra uma mensagem de debug
func (l *ApexLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

// Warn registra uma mensagem de aviso
func (l *ApexLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Warn(msg)
}

// With retorna um Logger que acrescenta os campos informados a todas as entradas
func (l *ApexLogger) With(keysAndValues ...interface{}) Logger {
	return &ApexLogger{entry: l.entry.WithFields(fields(keysAndValues))}
}

func fields(keysAndValues []interface{}) log.Fields {
	f := make(log.Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			f["!BADKEY"] = key
			break
		}
		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		f[key] = value
	}
	return f
}
