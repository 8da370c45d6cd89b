package dropzone

import "dropzone/internal/domain"

// Selection holds the files currently selected in a zone and the last error.
// Derived fields are computed from files on every read, so they cannot drift.
// Only the owning Zone mutates it.
type Selection struct {
	files   []domain.File
	lastErr error
}

// Files returns the selected files in selection order.
// The returned slice is a copy; the handles themselves are shared.
func (s *Selection) Files() []domain.File {
	out := make([]domain.File, len(s.files))
	copy(out, s.files)
	return out
}

// HasFiles reports whether any file is selected
func (s *Selection) HasFiles() bool {
	return len(s.files) > 0
}

// LastFile returns the last selected file, or nil if nothing is selected
func (s *Selection) LastFile() domain.File {
	if len(s.files) == 0 {
		return nil
	}
	return s.files[len(s.files)-1]
}

// Count returns the number of selected files
func (s *Selection) Count() int {
	return len(s.files)
}

// LastError returns the last rejection, or nil
func (s *Selection) LastError() error {
	return s.lastErr
}

// Errored reports whether the zone is in the errored state
func (s *Selection) Errored() bool {
	return s.lastErr != nil
}

// setFiles replaces the selection wholesale
func (s *Selection) setFiles(files []domain.File) {
	s.files = make([]domain.File, len(files))
	copy(s.files, files)
}

// setError replaces the last error and reports whether it went from absent to present
func (s *Selection) setError(err error) bool {
	raised := s.lastErr == nil && err != nil
	s.lastErr = err
	return raised
}
