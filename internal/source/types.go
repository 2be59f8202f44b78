package source

type (
	// FileID uniquely identifies a log file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a loaded log file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileDecodedLatin1 indicates the raw bytes were not valid UTF-8 and
	// were reinterpreted as Latin-1 on load.
	FileDecodedLatin1
)

// File captures metadata and content for a single compiler log.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a log file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
