package response

import (
	"encoding/base64"

	"github.com/giancarlo349/G-OS3/internal/usecase"
)

// DocumentResponse delivers a rendered export as JSON. Content is base64 so
// the share message, which carries newlines and emoji, can ride along in the
// same payload instead of unsafe response headers.
type DocumentResponse struct {
	FileName     string `json:"file_name"`
	ContentType  string `json:"content_type"`
	Content      string `json:"content"`
	ShareMessage string `json:"share_message"`
}

func FromDocument(d usecase.Document) DocumentResponse {
	return DocumentResponse{
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		Content:      base64.StdEncoding.EncodeToString(d.Content),
		ShareMessage: d.ShareMessage,
	}
}
