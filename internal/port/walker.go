package port

// FileWalker enumerates source files under a scan root.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

// FileInfo describes one file found by a walk. RelPath is the
// slash-separated path relative to the scan root and is the identity
// used by the store and reports.
type FileInfo struct {
	Path    string
	RelPath string
	ModTime int64
	Size    int64
}
