package gvcfdb

import (
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for an input file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// RecordLoad appends a load_history row for a completed load.
// ModTime is stored as unix nanoseconds so equality survives the
// database round trip.
func (s *Store) RecordLoad(sample string, fp FileFingerprint, records int) error {
	_, err := s.db.Exec(
		"INSERT INTO load_history (path, size, mod_time_ns, sample, records, loaded_at) VALUES (?, ?, ?, ?, ?, ?)",
		fp.Path, fp.Size, fp.ModTime.UnixNano(), sample, records, time.Now())
	if err != nil {
		return fmt.Errorf("record load: %w", err)
	}
	return nil
}

// AlreadyLoaded reports whether a file with this exact path, size and
// modification time has been loaded before.
func (s *Store) AlreadyLoaded(fp FileFingerprint) (bool, error) {
	var count int64
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM load_history WHERE path=? AND size=? AND mod_time_ns=?",
		fp.Path, fp.Size, fp.ModTime.UnixNano()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query load history: %w", err)
	}
	return count > 0, nil
}
