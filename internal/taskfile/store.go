package taskfile

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
)

// Store persists the ordered task list to a single text file. It holds no
// state between calls beyond the path: Load and Save are pure functions
// of the file text and the task list.
type Store struct {
	path string
	log  *logrus.Logger
}

// NewStore creates a store for the given file path.
func NewStore(path string, log *logrus.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the task file. It never fails: an absent, empty,
// or malformed file yields an empty list, with diagnostics logged for
// anything that had to be skipped or defaulted.
func (s *Store) Load() []domain.Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", s.path).Warn("could not read task file; starting with an empty task list")
		}
		return nil
	}

	tasks, diags := Decode(string(data))
	for _, d := range diags {
		s.log.WithField("severity", d.Severity.String()).Warn(d.Message)
	}
	if len(tasks) > 0 {
		s.log.WithFields(logrus.Fields{"path": s.path, "count": len(tasks)}).Debug("loaded tasks")
	}
	return tasks
}

// Save truncates and rewrites the task file with the full list. If the
// file cannot be opened, nothing is written and the on-disk content is
// left untouched. There is no temp-file staging: a crash mid-write can
// leave a truncated file.
func (s *Store) Save(tasks []domain.Task) error {
	f, err := os.Create(s.path)
	if err != nil {
		s.log.WithError(err).WithField("path", s.path).Error("could not open task file for writing")
		return errors.NewStorageError("open task file for writing", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, Encode(tasks)); err != nil {
		return errors.NewStorageError("write task file", err)
	}
	s.log.WithFields(logrus.Fields{"path": s.path, "count": len(tasks)}).Debug("saved tasks")
	return nil
}
