package client

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibdrv/internal/format"
)

// WriteTimings writes one nanosecond count per line, in the order given.
func WriteTimings(w io.Writer, timings []time.Duration) error {
	bw := bufio.NewWriter(w)
	for _, d := range timings {
		if _, err := fmt.Fprintln(bw, format.FormatNanoseconds(d)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
