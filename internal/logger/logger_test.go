package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
		" INFO": zapcore.InfoLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext ensures context attachment round-trips and the global
// logger is the fallback.
func TestFromContext(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
	//nolint:staticcheck // Explicitly testing the nil-context fallback.
	require.Same(t, Logger(), FromContext(nil))

	l := zap.NewNop().Sugar()
	ctx := ToContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))

	// Derived helpers keep the attached logger, not the global one.
	named := WithName(ctx, "test")
	require.NotSame(t, Logger(), FromContext(named))

	withKV := WithKV(named, "component", "test")
	require.NotSame(t, FromContext(named), FromContext(withKV))

	withFields := WithFields(named, zap.String("component", "test"))
	require.NotSame(t, FromContext(named), FromContext(withFields))
}
