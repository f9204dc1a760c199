package port

import "doccov/internal/domain"

// FileMeta is the stored record for one scanned file.
type FileMeta struct {
	Path    string
	ModTime int64
	Hash    string
}

// ScanStore persists per-file outlines and coverage reports between runs.
type ScanStore interface {
	PutFile(meta FileMeta) error
	GetFile(path string) (FileMeta, bool, error)
	ListFiles() ([]FileMeta, error)
	DeleteFile(path string) error

	PutAnalysis(path string, outline []domain.Unit, report domain.Report) error
	GetAnalysis(path string) ([]domain.Unit, domain.Report, error)

	Clear() error
	Close() error
}
