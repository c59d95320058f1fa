package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanoutWriter copies every write to all of its sinks. A failing sink does
// not stop the others; its error is folded into the returned one.
type FanoutWriter struct {
	sinks []io.Writer
}

func NewFanoutWriter(sinks ...io.Writer) *FanoutWriter {
	fw := &FanoutWriter{}
	for _, s := range sinks {
		if s != nil {
			fw.sinks = append(fw.sinks, s)
		}
	}
	return fw
}

func (fw *FanoutWriter) Sinks() int {
	return len(fw.sinks)
}

// Write reports len(p) when at least one sink took the whole buffer, so
// log libraries don't treat a partial fanout as a short write.
func (fw *FanoutWriter) Write(p []byte) (int, error) {
	var errs error
	accepted := 0
	for _, s := range fw.sinks {
		n, err := s.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		accepted++
	}
	if accepted == 0 {
		return 0, errs
	}
	return len(p), errs
}
