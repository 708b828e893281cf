package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store хранилище значений по ключу. Значение всегда заменяется целиком, последняя запись побеждает.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore хранит значения в памяти процесса
type MemoryStore struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = cloneBytes(value)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// JSONStore хранит все ключи в одном JSON-файле.
// Значения должны быть валидным JSON.
type JSONStore struct {
	filename string
	mu       sync.Mutex
}

// NewJSONStore создаёт новый JSONStore с указанным файлом.
// Если файла нет, он создается с пустым объектом.
func NewJSONStore(filename string) (*JSONStore, error) {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if err := os.WriteFile(filename, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to create file %s: %w", filename, err)
		}
	}
	return &JSONStore{filename: filename}, nil
}

func (j *JSONStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(j.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", j.filename, err)
	}
	if len(data) == 0 {
		return make(map[string]json.RawMessage), nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON in %s: %w", j.filename, err)
	}
	if m == nil {
		m = make(map[string]json.RawMessage)
	}
	return m, nil
}

// save пишет во временный файл и переименовывает его, чтобы сбой записи не портил данные.
func (j *JSONStore) save(m map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	tmp := j.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, j.filename); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", j.filename, err)
	}
	return nil
}

func (j *JSONStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (j *JSONStore) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		// испорченный файл перезаписывается: последняя запись побеждает
		m = make(map[string]json.RawMessage)
	}
	m[key] = cloneBytes(value)
	return j.save(m)
}

func (j *JSONStore) Delete(_ context.Context, key string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return j.save(m)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
