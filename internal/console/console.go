// Package console captures the test machine's serial console.
//
// Installer crashes often only show up on the console; Capture keeps a log
// of it for failed runs. The console command (typically `virsh console
// <domain>`) insists on a terminal, so it runs under a pty.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/creack/pty"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Capture runs the command under a pty and copies its output to w until
// the command exits or ctx is canceled.
func Capture(ctx context.Context, w io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	tty, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf(messages.ConsoleStartFmt, cmd.String(), err)
	}
	defer func() { _ = tty.Close() }()

	_, copyErr := io.Copy(w, tty)
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if waitErr != nil {
		return fmt.Errorf(messages.ConsoleRunFmt, cmd.String(), waitErr)
	}
	// The pty read fails with EIO once the child exits; that is the normal
	// end of the stream, not a copy problem.
	var pathErr *fs.PathError
	if copyErr != nil && !errors.As(copyErr, &pathErr) {
		return fmt.Errorf(messages.ConsoleCopyFmt, copyErr)
	}
	return nil
}
