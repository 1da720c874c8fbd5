// Package exec runs child processes and hands them host pipe endpoints.
//
// Command wraps os/exec with a fluent, testable interface. Settings passed to
// New are global and apply to every run; the With methods on a Command are
// local and last for the next Run only.
//
// # Basic Usage
//
//	result, err := exec.New().Run("echo", "hello world")
//	if err != nil {
//		return err
//	}
//	fmt.Print(result.Stdout)
//
// # Passing pipe endpoints
//
// A core.PipeChannel endpoint duplicated with SendFile can be given to the
// child as an extra descriptor. The first extra file is fd 3 on POSIX hosts:
//
//	pipe := platform.CreatePipe()
//	defer pipe.Close()
//
//	send, err := pipe.SendFile()
//	if err != nil {
//		return err
//	}
//	_, err = exec.New().WithExtraFiles(send).Run("sh", "-c", "echo ready >&3")
//	send.Close()
//
//	n, _, err := pipe.Receive(buf)
//
// The caller keeps ownership of every extra file and closes it after Run.
//
// # Errors
//
// A command that cannot start, exits non-zero or times out yields an
// EXECUTION_FAILED error wrapping an *ExecError with the captured output.
package exec
