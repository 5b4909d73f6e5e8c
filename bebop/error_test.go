package bebop

import (
	"strings"

	"testing"

	"github.com/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindStreaming, Op: "StartStreaming", Err: errors.New("no ARStream")}
	msg := err.Error()
	for _, part := range []string{"StartStreaming", "streaming", "no ARStream"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q missing %q", msg, part)
		}
	}
}

func TestIsFatal(t *testing.T) {
	conn := &Error{Kind: KindConnection, Op: "Connect", Err: errors.New("timeout")}
	if !IsFatal(conn) {
		t.Error("connection error should be fatal")
	}
	if !IsFatal(errors.Wrap(conn, "driver init")) {
		t.Error("wrapping must not hide a fatal error")
	}

	for _, k := range []Kind{KindStreaming, KindCommand, KindSettings, KindFrame} {
		if IsFatal(&Error{Kind: k, Op: "op"}) {
			t.Errorf("%s errors should be recoverable", k)
		}
	}
	if IsFatal(errors.New("plain")) {
		t.Error("a plain error is not fatal")
	}
}
