package mdmend

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypeText represents a chunk of normalized message text.
	ContentTypeText ContentType = iota
	// ContentTypeFile represents a code block extracted as a file.
	ContentTypeFile
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeText:
		return "text"
	case ContentTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ContentTrace tracks the source and metadata of content.
type ContentTrace struct {
	SourceType string
	Extra      map[string]interface{}
}

// Content represents a piece of pipeline output ready for delivery.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Text represents a normalized text chunk.
type Text struct {
	Text         string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeText.
func (t *Text) GetContentType() ContentType {
	return ContentTypeText
}

// GetContentTrace returns the content trace.
func (t *Text) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// CodeFile represents an oversized code block extracted as a file.
type CodeFile struct {
	FileName     string
	FileData     []byte
	CaptionText  string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeFile.
func (f *CodeFile) GetContentType() ContentType {
	return ContentTypeFile
}

// GetContentTrace returns the content trace.
func (f *CodeFile) GetContentTrace() ContentTrace {
	return f.ContentTrace
}
