package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/idelchi/sealr/internal/logging"
)

func TestLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name   string
		logger logging.Logger
		want   []string
		absent []string
	}{
		{
			name:   "default",
			logger: logging.Logger{},
			want:   []string{"[warn] w", "[error] e"},
			absent: []string{"[info]", "[debug]"},
		},
		{
			name:   "verbose",
			logger: logging.Logger{Verbose: true},
			want:   []string{"[info] i", "[warn] w", "[error] e"},
			absent: []string{"[debug]"},
		},
		{
			name:   "debug",
			logger: logging.Logger{Debug: true},
			want:   []string{"[info] i", "[debug] d", "[warn] w", "[error] e"},
		},
		{
			name:   "quiet",
			logger: logging.Logger{Quiet: true},
			want:   []string{"[error] e"},
			absent: []string{"[warn]", "[info]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := tt.logger
			logger.Out = &buf

			logger.Infof("i")
			logger.Debugf("d")
			logger.Warnf("w")
			logger.Errorf("e")

			out := buf.String()

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}

			for _, a := range tt.absent {
				if strings.Contains(out, a) {
					t.Errorf("output %q should not contain %q", out, a)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	logger := logging.New(&buf, true, false, false)
	logger.Infof("value %d", 7)
	logger.Debugf("hidden")

	if got := buf.String(); got != "[info] value 7\n" {
		t.Errorf("output = %q", got)
	}

	if logging.New(nil, false, false, false).Out == nil {
		t.Error("New(nil, ...) left Out unset")
	}
}
