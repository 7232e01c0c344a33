package domain

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// Encoding is the transport encoding declared to the GitLab API. It must
// match the payload exactly or the remote will corrupt binary files.
type Encoding string

const (
	EncodingText   Encoding = "text"
	EncodingBase64 Encoding = "base64"
)

// binaryExtensions is the denylist of extensions transported as base64.
// Anything not listed here is treated as UTF-8 text, unknown extensions
// and extensionless files included.
var binaryExtensions = map[string]bool{
	// images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".tif": true, ".tiff": true, ".webp": true,
	// archives
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true, ".jar": true, ".war": true,
	// office documents
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".odt": true, ".ods": true,
	// audio/video
	".mp3": true, ".mp4": true, ".wav": true, ".flac": true, ".ogg": true,
	".avi": true, ".mov": true, ".mkv": true, ".webm": true,
	// executables and object code
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".class": true, ".o": true, ".a": true, ".wasm": true,
	// databases
	".db": true, ".sqlite": true, ".sqlite3": true, ".mdb": true,
}

// IsBinary reports whether the file at path should be transported as base64,
// decided purely by extension.
func IsBinary(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return binaryExtensions[ext]
}

// EncodingFor returns the transport encoding for the file at path.
func EncodingFor(path string) Encoding {
	if IsBinary(path) {
		return EncodingBase64
	}
	return EncodingText
}

// EncodeContent prepares raw object bytes for transport: base64 for binary
// files, UTF-8 passthrough for text files.
func EncodeContent(path string, raw []byte) (string, Encoding) {
	if IsBinary(path) {
		return base64.StdEncoding.EncodeToString(raw), EncodingBase64
	}
	return string(raw), EncodingText
}
