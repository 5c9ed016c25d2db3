package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// paint writes s to buf wrapped in the given ANSI color.
func paint(buf *bytes.Buffer, color, s string) {
	buf.WriteString(color)
	buf.WriteString(s)
	buf.WriteString(colorReset)
}

// levelColor selects the color for a level label.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}

// levelLabel renders a level with its defined name, uppercased to match
// slog's builtin handlers, so trace shows as "TRACE" instead of "DEBUG-4".
func levelLabel(level slog.Level) string {
	return strings.ToUpper(Level(level).String())
}

// paintValue writes a slog value colored by kind. Both pretty handlers share
// this representation: strings cyan, numbers yellow, booleans green or red,
// durations magenta, times blue.
func paintValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		paint(buf, colorCyan, v.String())

	case slog.KindInt64:
		paint(buf, colorYellow, strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		paint(buf, colorYellow, strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		paint(buf, colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			paint(buf, colorGreen, "true")
		} else {
			paint(buf, colorRed, "false")
		}

	case slog.KindDuration:
		paint(buf, colorMagenta, v.Duration().String())

	case slog.KindTime:
		paint(buf, colorBlue, v.Time().String())

	case slog.KindAny:
		if v.Any() == nil {
			paint(buf, colorGray, "null")

			return
		}

		if level, ok := v.Any().(slog.Level); ok {
			paint(buf, levelColor(level), levelLabel(level))

			return
		}

		paint(buf, colorCyan, v.String())

	default:
		paint(buf, colorCyan, v.String())
	}
}

// stampAttr runs the handler's ReplaceAttr on the record timestamp so the
// configured time layout applies to pretty output as well. A zero attr means
// timestamps are disabled.
func stampAttr(opts *slog.HandlerOptions, r slog.Record) (slog.Attr, bool) {
	if r.Time.IsZero() {
		return slog.Attr{}, false
	}

	a := slog.Time(slog.TimeKey, r.Time)
	if opts.ReplaceAttr != nil {
		a = opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return slog.Attr{}, false
	}

	return a, true
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if a, ok := stampAttr(&h.opts, r); ok {
		h.writeAttr(buf, a)
	}

	h.writeKey(buf, slog.LevelKey)
	paint(buf, levelColor(r.Level), levelLabel(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			source := fmt.Sprintf("%s:%d", src.File, src.Line)
			h.writeAttr(buf, slog.String(slog.SourceKey, source))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyTextHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	paint(buf, colorGray, key)
	buf.WriteByte('=')
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	h.writeKey(buf, a.Key)
	paintValue(buf, a.Value)
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	first := true

	if a, ok := stampAttr(&h.opts, r); ok {
		h.writeField(buf, a, &first)
	}

	h.writeFieldKey(buf, slog.LevelKey, &first)
	paint(buf, levelColor(r.Level), levelLabel(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			source := fmt.Sprintf("%s:%d", src.File, src.Line)
			h.writeField(buf, slog.String(slog.SourceKey, source), &first)
		}
	}

	h.writeField(buf, slog.String(slog.MessageKey, r.Message), &first)

	for _, a := range h.attrs {
		h.writeField(buf, a, &first)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeField(buf, a, &first)

		return true
	})

	buf.WriteString("\n}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyJSONHandler) writeFieldKey(
	buf *bytes.Buffer,
	key string,
	first *bool,
) {
	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString("  ")
	paint(buf, colorGray, key)
	buf.WriteString(": ")
}

func (h *prettyJSONHandler) writeField(
	buf *bytes.Buffer,
	a slog.Attr,
	first *bool,
) {
	h.writeFieldKey(buf, a.Key, first)
	paintValue(buf, a.Value)
}
