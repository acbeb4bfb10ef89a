package skipgram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevel(t *testing.T) {
	if l := NewLogger("debug", &bytes.Buffer{}); l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", l.GetLevel())
	}
	if l := NewLogger("nonsense", &bytes.Buffer{}); l.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", l.GetLevel())
	}
}

func TestDecorate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("info", &buf)
	decorate(l, 1).Info("hello")

	out := buf.String()
	if !strings.Contains(out, "log_test.go") {
		t.Errorf("log line %q has no caller position", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("log line %q lost the message", out)
	}
}

func TestTrainerLogsEpochs(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(4, 2)
	cfg.Logger = NewLogger("info", &buf)
	tr := newTestTrainer(t, cfg)

	if _, err := tr.TrainSets(2, [][]int{{0, 1, 2}}, 1); err != nil {
		t.Fatalf("TrainSets() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Epoch: 0, Loss:") {
		t.Errorf("log output %q has no epoch line", buf.String())
	}
}
