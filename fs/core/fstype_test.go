package core_test

import (
	"testing"

	"github.com/jmgilman/go/hostfs/fs/core"
)

func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{name: "Unknown", fsType: core.FSTypeUnknown, expected: "unknown"},
		{name: "Local", fsType: core.FSTypeLocal, expected: "local"},
		{name: "Memory", fsType: core.FSTypeMemory, expected: "memory"},
		{name: "Invalid", fsType: core.FSType(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fsType.String(); got != tt.expected {
				t.Errorf("FSType.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResults_String(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{core.RenameSuccess.String(), "success"},
		{core.RenameFailureNotEmpty.String(), "not-empty"},
		{core.RenameFailureOtherError.String(), "error"},
		{core.ReadInterrupted.String(), "interrupted"},
		{core.ReadAgain.String(), "again"},
		{core.ReadOtherError.String(), "error"},
		{core.WriteBrokenPipe.String(), "broken-pipe"},
		{core.WriteOtherError.String(), "error"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestReadResult_Retryable(t *testing.T) {
	if !core.ReadInterrupted.Retryable() || !core.ReadAgain.Retryable() {
		t.Error("interrupted and again must be retryable")
	}
	if core.ReadSuccess.Retryable() || core.ReadOtherError.Retryable() {
		t.Error("success and other must not be retryable")
	}
}
