package core

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_RoundTrip(t *testing.T) {
	osfs := NewOSFileSystem()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "VERSION")

	if err := osfs.WriteFile(ctx, path, []byte("1.2.3\n"), PermOwnerRW); err != nil {
		t.Fatal(err)
	}

	data, err := osfs.ReadFile(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1.2.3\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	if _, err := osfs.Stat(ctx, path); err != nil {
		t.Errorf("Stat() error = %v", err)
	}
}

func TestOSFileSystem_CanceledContext(t *testing.T) {
	osfs := NewOSFileSystem()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := osfs.ReadFile(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile() error = %v, want context.Canceled", err)
	}
	if err := osfs.WriteFile(ctx, "whatever", nil, PermOwnerRW); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteFile() error = %v, want context.Canceled", err)
	}
}

func TestMockFileSystem(t *testing.T) {
	m := NewMockFileSystem()
	ctx := context.Background()

	if _, err := m.ReadFile(ctx, "missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}

	m.AddFile("VERSION", []byte("1.0.0"))
	data, err := m.ReadFile(ctx, "VERSION")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1.0.0" {
		t.Errorf("ReadFile() = %q", data)
	}

	injected := errors.New("injected")
	m.FailReads("VERSION", injected)
	if _, err := m.ReadFile(ctx, "VERSION"); !errors.Is(err, injected) {
		t.Errorf("ReadFile() error = %v, want injected", err)
	}

	m.FailWrites("out", injected)
	if err := m.WriteFile(ctx, "out", []byte("x"), PermOwnerRW); !errors.Is(err, injected) {
		t.Errorf("WriteFile() error = %v, want injected", err)
	}
}
