package models

import (
	"path"
	"strings"
)

var extFileTypes = map[string]FileType{
	".jpg":  FileTypeImage,
	".jpeg": FileTypeImage,
	".png":  FileTypeImage,
	".gif":  FileTypeImage,
	".webp": FileTypeImage,
	".svg":  FileTypeImage,
	".mp4":  FileTypeVideo,
	".webm": FileTypeVideo,
	".mov":  FileTypeVideo,
	".mp3":  FileTypeAudio,
	".wav":  FileTypeAudio,
	".ogg":  FileTypeAudio,
	".flac": FileTypeAudio,
	".pdf":  FileTypeDocument,
	".doc":  FileTypeDocument,
	".docx": FileTypeDocument,
	".ppt":  FileTypeDocument,
	".pptx": FileTypeDocument,
	".txt":  FileTypeDocument,
	".md":   FileTypeDocument,
	".zip":  FileTypeDocument,
}

// InferFileType guesses the media type tag from a filename extension.
// Unknown extensions fall back to document, which renders as a plain
// download affordance.
func InferFileType(filename string) FileType {
	ext := strings.ToLower(path.Ext(filename))
	if t, ok := extFileTypes[ext]; ok {
		return t
	}
	return FileTypeDocument
}
