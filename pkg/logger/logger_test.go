package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestOpenSink(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "ok. stdout", path: ""},
		{name: "ok. file", path: filepath.Join(dir, "app.log")},
		{name: "err. missing dir", path: filepath.Join(dir, "missing", "app.log"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := openSink(tt.path)
			require.NotNil(t, out)
			if tt.wantErr {
				require.ErrorContains(t, err, "open "+tt.path)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: path}, "test")
	log.Info("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
	require.Contains(t, string(data), `"logger":"test"`)
}
