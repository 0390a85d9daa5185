package runner

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/testpick/testpick/internal/executor"
)

// fakeShell records invocations and returns a canned result
type fakeShell struct {
	result     *executor.ExecResult
	err        error
	calls      int
	gotCommand string
}

func (f *fakeShell) ShellStreaming(command string, options executor.ExecOptions, stdout, stderr io.Writer) (*executor.ExecResult, error) {
	f.calls++
	f.gotCommand = command
	return f.result, f.err
}

func newTestDispatcher(shell *fakeShell) (*Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	return NewDispatcher(shell, "", &out, io.Discard), &out
}

func TestDispatch_Executes(t *testing.T) {
	shell := &fakeShell{result: &executor.ExecResult{ExitCode: 0}}
	d, _ := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb"}, "SEED=1 rake test a_test.rb", Options{})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if shell.calls != 1 {
		t.Errorf("expected 1 execution, got %d", shell.calls)
	}
	if shell.gotCommand != "SEED=1 rake test a_test.rb" {
		t.Errorf("executed %q", shell.gotCommand)
	}
}

func TestDispatch_SurfacesExitCode(t *testing.T) {
	shell := &fakeShell{result: &executor.ExecResult{ExitCode: 3}}
	d, _ := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb"}, "rake test", Options{})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestDispatch_EmptySetNeverExecutes(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no flags", Options{}},
		{"list", Options{List: true}},
		{"dry-run", Options{DryRun: true}},
		{"both", Options{List: true, DryRun: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell := &fakeShell{result: &executor.ExecResult{}}
			d, _ := newTestDispatcher(shell)

			code, err := d.Dispatch(nil, "rake test", tt.opts)
			if err != nil {
				t.Fatalf("Dispatch() error: %v", err)
			}
			if code != 0 {
				t.Errorf("exit code = %d, want 0", code)
			}
			if shell.calls != 0 {
				t.Errorf("expected no execution, got %d calls", shell.calls)
			}
		})
	}
}

func TestDispatch_List(t *testing.T) {
	shell := &fakeShell{}
	d, out := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb", "b_test.rb"}, "rake test", Options{List: true})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if shell.calls != 0 {
		t.Error("list must not execute the command")
	}
	if out.String() != "a_test.rb\nb_test.rb\n" {
		t.Errorf("list output = %q", out.String())
	}
}

func TestDispatch_DryRun(t *testing.T) {
	shell := &fakeShell{}
	d, out := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb"}, "SEED=1 rake test a_test.rb", Options{DryRun: true})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if shell.calls != 0 {
		t.Error("dry-run must not execute the command")
	}
	if out.String() != "SEED=1 rake test a_test.rb\n" {
		t.Errorf("dry-run output = %q", out.String())
	}
}

func TestDispatch_ListAndDryRunTogether(t *testing.T) {
	shell := &fakeShell{}
	d, out := newTestDispatcher(shell)

	_, err := d.Dispatch([]string{"a_test.rb"}, "rake test a_test.rb", Options{List: true, DryRun: true})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	if shell.calls != 0 {
		t.Error("no execution expected with list and dry-run")
	}
	if out.String() != "a_test.rb\nrake test a_test.rb\n" {
		t.Errorf("combined output = %q", out.String())
	}
}

func TestDispatch_EmptySetStillPrintsRequestedOutputs(t *testing.T) {
	shell := &fakeShell{}
	d, out := newTestDispatcher(shell)

	_, err := d.Dispatch(nil, "SEED=1 rake test", Options{List: true, DryRun: true})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	// Empty list prints nothing; dry-run still prints the command
	if out.String() != "SEED=1 rake test\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestDispatch_RunnerFailure(t *testing.T) {
	shell := &fakeShell{err: errors.New("sh missing")}
	d, _ := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb"}, "rake test", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestDispatch_StartFailure(t *testing.T) {
	shell := &fakeShell{result: &executor.ExecResult{
		ExitCode: -1,
		Error:    errors.New("command not found: rake"),
	}}
	d, _ := newTestDispatcher(shell)

	code, err := d.Dispatch([]string{"a_test.rb"}, "rake test", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
