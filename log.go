package skipgram

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a text logger at the given level. Unknown levels fall
// back to info.
func NewLogger(level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// decorate tags an entry with the file:line of the caller skip frames up.
func decorate(l logrus.FieldLogger, skip int) *logrus.Entry {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return l.WithFields(logrus.Fields{})
	}
	path := strings.Split(file, string(os.PathSeparator))
	if len(path) > 2 {
		path = path[len(path)-2:]
	}
	return l.WithFields(logrus.Fields{
		"position": fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line),
		"func":     runtime.FuncForPC(pc).Name(),
	})
}
