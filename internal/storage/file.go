package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
)

// FileStore persists keys as a single JSON object on disk. All failures
// are logged and swallowed.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) load() map[string]string {
	data := map[string]string{}
	b, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("session file read failed: %v", err)
		}
		return data
	}
	if err := json.Unmarshal(b, &data); err != nil {
		// corrupted file: start over rather than fail
		logger.Warnf("session file corrupted, discarding: %v", err)
		return map[string]string{}
	}
	return data
}

func (f *FileStore) save(data map[string]string) bool {
	b, err := json.Marshal(data)
	if err != nil {
		logger.Warnf("session file encode failed: %v", err)
		return false
	}
	if err := os.WriteFile(f.path, b, 0o600); err != nil {
		logger.Warnf("session file write failed: %v", err)
		return false
	}
	return true
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.load()[key]
	if !ok || !ValidValue(v) {
		return "", false
	}
	return v, true
}

func (f *FileStore) Set(_ context.Context, key, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.load()
	data[key] = value
	return f.save(data)
}

func (f *FileStore) Remove(_ context.Context, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.load()
	if _, ok := data[key]; !ok {
		return true
	}
	delete(data, key)
	return f.save(data)
}
