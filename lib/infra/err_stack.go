package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(pc)
	return f
}

func (frame Frame) line() int {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(pc)
	return l
}

func (frame Frame) name() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - full path, the root path is relative to the compile time GOPATH
// separated by \n\t (<function-name>\n\t<path>)
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

// MarshalText is used by fmt.Sprintf("%+v", frame).
// If json.Marshaler interface isn't implemented, the MarshalText method is used.
func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(frame.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(frame.line()))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

// ErrorStack is an error carrying the frames where it was created or wrapped.
// It could be inlined into a zap entry, so the stack is emitted as structured
// fields instead of a plain text stacktrace.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Frames() []Frame
}

const maxStackDepth = 32

type stack []Frame

func (s stack) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, frame := range s {
		if frame.name() == "unknownFunc" {
			continue
		}
		enc.AppendString(funcName(frame.name()) + " " + path.Base(frame.file()) + ":" + strconv.Itoa(frame.line()))
	}
	return nil
}

func callers(skip int) stack {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	s := make(stack, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, Frame(pcs[i]))
	}
	return s
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	upstream error
	msg      string
	frames   stack
}

func (es *errorStack) Error() string {
	switch {
	case es.upstream == nil:
		return es.msg
	case len(es.msg) == 0:
		return es.upstream.Error()
	}
	return es.msg + ": " + es.upstream.Error()
}

// Unwrap exposes the upstream error, so errors.Is and errors.As work
// through the stack. Upstream errors combined by multierr are still
// matched one by one.
func (es *errorStack) Unwrap() error {
	return es.upstream
}

func (es *errorStack) Frames() []Frame {
	return es.frames
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	if errs := multierr.Errors(es.upstream); len(errs) > 1 {
		causes := make([]string, 0, len(errs))
		for _, err := range errs {
			causes = append(causes, err.Error())
		}
		if err := enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
			for _, c := range causes {
				arr.AppendString(c)
			}
			return nil
		})); err != nil {
			return err
		}
	}
	return enc.AddArray("errorStack", es.frames)
}

// Format characters:
// %s, %v - the error message
// %q - the quoted error message
// %+v - the error message followed by the frames, one per line
func (es *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, es.Error())
		if s.Flag('+') {
			for _, frame := range es.frames {
				_, _ = io.WriteString(s, "\n")
				frame.Format(s, verb)
			}
		}
	case 's':
		_, _ = io.WriteString(s, es.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", es.Error())
	}
}

func NewErrorStack(msg string) error {
	return &errorStack{
		msg:    msg,
		frames: callers(3),
	}
}

// WrapErrorStack returns nil if err is nil.
// An error which is already an ErrorStack keeps its frames.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	if es, ok := err.(*errorStack); ok {
		return es
	}
	return &errorStack{
		upstream: err,
		frames:   callers(3),
	}
}

// WrapErrorStackWithMessage returns nil if err is nil.
func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	frames := callers(3)
	if es, ok := err.(*errorStack); ok {
		frames = es.frames
	}
	return &errorStack{
		upstream: err,
		msg:      msg,
		frames:   frames,
	}
}

// AppendErrorStack combines the errors into one ErrorStack.
// Nil errors are ignored, and nil returns if no error remains.
func AppendErrorStack(errs ...error) error {
	merr := multierr.Combine(errs...)
	if merr == nil {
		return nil
	}
	return &errorStack{
		upstream: merr,
		frames:   callers(3),
	}
}
