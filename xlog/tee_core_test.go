package xlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestXLogTeeCore(t *testing.T) {
	tee := XLogTeeCore(nil).(xLogMultiCore)
	require.Len(t, tee, 0)
	require.Nil(t, tee.writeSyncer())
	require.Nil(t, tee.levelEncoder())
	require.Nil(t, tee.timeEncoder())
	require.Nil(t, tee.outEncoder())
	require.False(t, tee.Enabled(zapcore.ErrorLevel))

	w1 := &testMemOutWriter{data: make([]byte, 0, 4096)}
	w2 := &testMemOutWriter{data: make([]byte, 0, 4096)}
	lvl1 := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	lvl2 := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	tee = XLogTeeCore(
		newConsoleCore(&lvl1, JSON, zapcore.AddSync(w1), zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder),
		nil,
		newConsoleCore(&lvl2, PlainText, zapcore.AddSync(w2), zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder),
	).(xLogMultiCore)
	require.Len(t, tee, 2)
	require.True(t, tee.Enabled(zapcore.DebugLevel))
	require.NotNil(t, tee.With([]zap.Field{zap.String("key", "value")}))

	l := zap.New(tee)
	l.Debug("tee debug")
	l.Warn("tee warn")
	require.NoError(t, l.Sync())
	require.Contains(t, w1.String(), "tee debug")
	require.Contains(t, w1.String(), "tee warn")
	require.NotContains(t, w2.String(), "tee debug")
	require.Contains(t, w2.String(), "tee warn")

	ent := zapcore.Entry{Level: zapcore.InfoLevel, Message: "tee direct write"}
	require.NoError(t, tee.Write(ent, nil))
	require.Contains(t, w2.String(), "tee direct write")

	wrapped, err := WrapCores(tee, componentCoreEncoderCfg)
	require.NoError(t, err)
	require.Len(t, wrapped.(xLogMultiCore), 2)
	_, err = WrapCores(tee, nil)
	require.Error(t, err)
}
