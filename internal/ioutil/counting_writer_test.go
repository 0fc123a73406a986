package ioutil_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/vobject/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	sb    strings.Builder
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.sb.Len()
	if room <= 0 {
		return 0, errtrace.Wrap(errWrite)
	}
	if len(p) > room {
		w.sb.Write(p[:room])
		return room, errtrace.Wrap(errWrite)
	}
	return errtrace.Wrap2(w.sb.Write(p))
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		limit   int
		write   func(cw *ioutil.CountingWriter)
		wantNum int
		wantOut string
		wantErr error
	}{
		{
			"write and print",
			100,
			func(cw *ioutil.CountingWriter) {
				cw.Write([]byte("BEGIN")) //nolint:errcheck
				cw.Fprint(":", "VCARD")  //nolint:errcheck
				cw.WriteString("\r\n")   //nolint:errcheck
			},
			13,
			"BEGIN:VCARD\r\n",
			nil,
		},
		{
			"call chain",
			100,
			func(cw *ioutil.CountingWriter) {
				cw.Call(func(w io.Writer) (int, error) {
					return errtrace.Wrap2(fmt.Fprint(w, "FN"))
				}).Call(func(w io.Writer) (int, error) {
					return errtrace.Wrap2(fmt.Fprint(w, ":x"))
				})
			},
			4,
			"FN:x",
			nil,
		},
		{
			"error stops writes",
			7,
			func(cw *ioutil.CountingWriter) {
				cw.WriteString("BEGIN:") //nolint:errcheck
				cw.WriteString("VCARD")  //nolint:errcheck
				cw.WriteString("\r\n")   //nolint:errcheck
				cw.Call(func(w io.Writer) (int, error) {
					return errtrace.Wrap2(fmt.Fprint(w, "never"))
				})
			},
			7,
			"BEGIN:V",
			errWrite,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			w := &limitWriter{limit: c.limit}
			cw := ioutil.GetCountingWriter(w)
			defer ioutil.FreeCountingWriter(cw)

			c.write(cw)
			num, err := cw.Result()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("cw.Result() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if num != c.wantNum {
				t.Errorf("cw.Result() num = %d, want %d", num, c.wantNum)
			}
			if got := w.sb.String(); got != c.wantOut {
				t.Errorf("written = %q, want %q", got, c.wantOut)
			}
		})
	}
}
