package source

// FileID indexes a File in its FileSet.
type FileID uint32

// FileFlags records how a file was loaded.
type FileFlags uint8

// NoFile is the FileID of spans that point into no file, such as I/O errors.
const NoFile FileID = 1<<32 - 1

const (
	FileVirtual        FileFlags = 1 << iota // not on disk; stdin or tests
	FileHadBOM                               // a UTF-8 BOM was stripped
	FileNormalizedCRLF                       // CRLF line endings became LF
)

// File is one loaded grammar. Content is normalized: no BOM, LF line endings.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n'
	Flags   FileFlags
}

// LineCol is a 1-based line and byte column.
type LineCol struct {
	Line, Col uint32
}
