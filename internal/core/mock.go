package core

import (
	"context"
	"io/fs"
	"os"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Errors can be injected per path to exercise failure paths.
type MockFileSystem struct {
	mu        sync.Mutex
	files     map[string][]byte
	readErrs  map[string]error
	writeErrs map[string]error
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:     make(map[string][]byte),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// AddFile seeds a file with the given content.
func (m *MockFileSystem) AddFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
}

// FailReads makes ReadFile on path return err.
func (m *MockFileSystem) FailReads(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs[path] = err
}

// FailWrites makes WriteFile on path return err.
func (m *MockFileSystem) FailWrites(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErrs[path] = err
}

// Content returns the current content of path and whether it exists.
func (m *MockFileSystem) Content(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.readErrs[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.writeErrs[path]; ok {
		return err
	}
	out := make([]byte, len(data))
	copy(out, data)
	m.files[path] = out
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: path, size: int64(len(data))}, nil
}

type mockFileInfo struct {
	name string
	size int64
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode  { return PermOwnerRW }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return false }
func (fi mockFileInfo) Sys() any           { return nil }
