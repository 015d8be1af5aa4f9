package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	ts := time.Date(2026, 1, 15, 10, 30, 45, 123000000, time.UTC)
	r := slog.NewRecord(ts, level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestTerminalHandlerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)

	r := newRecord(slog.LevelInfo, "server started", slog.String("port", "8080"))
	require.NoError(t, h.Handle(context.Background(), r))

	out := buf.String()
	assert.Contains(t, out, ansiDim+"10:30:45.123"+ansiReset)
	assert.Contains(t, out, ansiGreen+"INF"+ansiReset)
	assert.Contains(t, out, ansiBold+"server started"+ansiReset)
	assert.Contains(t, out, ansiDim+"port="+ansiReset+"8080")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestTerminalHandlerLevelLabels(t *testing.T) {
	cases := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, ansiCyan + "DBG" + ansiReset},
		{slog.LevelInfo, ansiGreen + "INF" + ansiReset},
		{slog.LevelWarn, ansiYellow + "WRN" + ansiReset},
		{slog.LevelError, ansiRed + "ERR" + ansiReset},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		require.NoError(t, h.Handle(context.Background(), newRecord(tc.level, "msg")))
		assert.Contains(t, buf.String(), tc.want, "level %v", tc.level)
	}
}

func TestTerminalHandlerEnabled(t *testing.T) {
	ctx := context.Background()

	quiet := newTerminalHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, quiet.Enabled(ctx, slog.LevelDebug))
	assert.False(t, quiet.Enabled(ctx, slog.LevelInfo))
	assert.True(t, quiet.Enabled(ctx, slog.LevelWarn))
	assert.True(t, quiet.Enabled(ctx, slog.LevelError))

	// Without options the handler defaults to info.
	h := newTerminalHandler(&bytes.Buffer{}, nil)
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.True(t, h.Enabled(ctx, slog.LevelInfo))
}

func TestTerminalHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil).WithAttrs([]slog.Attr{slog.String("run_id", "r-42")})

	r := newRecord(slog.LevelInfo, "scrape finished", slog.Int("new", 3))
	require.NoError(t, h.Handle(context.Background(), r))

	out := buf.String()
	assert.Contains(t, out, "run_id="+ansiReset+"r-42")
	assert.Contains(t, out, "new="+ansiReset+"3")
}

func TestTerminalHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil).WithGroup("scrape")

	r := newRecord(slog.LevelInfo, "done", slog.String("firm", "Citadel"))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Contains(t, buf.String(), "scrape.firm="+ansiReset+"Citadel")
}

func TestTerminalHandlerWithGroupEmptyName(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, nil)
	assert.Same(t, slog.Handler(h), h.WithGroup(""))
}

func TestTerminalHandlerGroupAttr(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)

	r := newRecord(slog.LevelInfo, "request",
		slog.Group("http", slog.String("method", "GET"), slog.Int("status", 200)))
	require.NoError(t, h.Handle(context.Background(), r))

	out := buf.String()
	assert.Contains(t, out, "http.method="+ansiReset+"GET")
	assert.Contains(t, out, "http.status="+ansiReset+"200")
}

func TestTerminalHandlerQuotesStringValues(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)

	r := newRecord(slog.LevelInfo, "event",
		slog.String("title", "Quant Research Night"),
		slog.String("kind", "event"))
	require.NoError(t, h.Handle(context.Background(), r))

	out := buf.String()
	assert.Contains(t, out, `"Quant Research Night"`)
	assert.Contains(t, out, "kind="+ansiReset+"event")
}

func TestTerminalHandlerZeroTimeUsesNow(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no timestamp", 0)
	require.NoError(t, h.Handle(context.Background(), r))
	assert.NotContains(t, buf.String(), "00:00:00.000")
}
