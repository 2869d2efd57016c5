package log

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const thisModule = "github.com/tunopen/tunopen"

// goroutineField is the field that dgroup uses for the goroutine name.
const goroutineField = "THREAD"

// Formatter formats log messages as "<time> <level> <goroutine> : <message> : <fields>".
type Formatter struct {
	timestampFormat string
}

func NewFormatter(timestampFormat string) *Formatter {
	return &Formatter{timestampFormat: timestampFormat}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	goroutine, _ := entry.Data[goroutineField].(string)
	fmt.Fprintf(b, "%s %-*s", entry.Time.Format(f.timestampFormat), len("warning"), entry.Level)
	if goroutine != "" {
		fmt.Fprintf(b, " %s :", strings.TrimPrefix(goroutine, "/"))
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != goroutineField {
			keys = append(keys, key)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" :")
		for _, key := range keys {
			fmt.Fprintf(b, " %s=%q", key, fmt.Sprintf("%+v", entry.Data[key]))
		}
	}

	if entry.HasCaller() && strings.HasPrefix(entry.Caller.File, thisModule+"/") {
		fmt.Fprintf(b, " (from %s:%d)", strings.TrimPrefix(entry.Caller.File, thisModule+"/"), entry.Caller.Line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
