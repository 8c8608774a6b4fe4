// services/condenser/logsink.go
package condenser

import "io"

// WriterLog is a LogSink over any io.Writer: a UART on the device, stdout
// on the host. Write errors are dropped; the log is best-effort.
type WriterLog struct {
	w io.Writer
}

func NewWriterLog(w io.Writer) *WriterLog { return &WriterLog{w: w} }

func (l *WriterLog) WriteLine(s string) {
	_, _ = l.w.Write(append([]byte(s), '\n'))
}
