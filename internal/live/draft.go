package live

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// SaveDraft writes a snapshot of the session to path so an unsaved game can
// be resumed. The clock is stored stopped.
func SaveDraft(path string, s *Session) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadDraft reads a draft written by SaveDraft. A missing file returns nil, nil.
func LoadDraft(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	var s Session
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &s, nil
}

// RemoveDraft deletes the draft file if present.
func RemoveDraft(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
