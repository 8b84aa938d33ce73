package interfaces

import (
	"context"
	"errors"
)

var ErrImageNotFound = errors.New("image not found")
var ErrImageNotSupported = errors.New("image format not supported")

// ResolvedImage is a readable local copy of the submitted image.
type ResolvedImage struct {
	Path     string
	MIMEType string
	Name     string
	Size     int64
	// Release removes temporary files created while resolving. Never nil.
	Release func()
}

// IImageResolver turns the "image" field of an upload (file path, data URI or
// bare base64) into a readable file.
type IImageResolver interface {
	Resolve(ctx context.Context, ref string) (ResolvedImage, error)
}
