package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"measure_service/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const DefaultMaxImageBytes int64 = 10 << 20

var errImageTooLarge = errors.New("image exceeds size limit")

// ImageResolver turns the upload "image" field into a readable local file.
//
// Accepted forms:
//   - a file path, relative paths resolved against baseDir when set
//   - a data URI (data:image/png;base64,...)
//   - bare base64 content
//
// Decoded content is written to a temp file that Release removes. Only image/*
// content is accepted.
type ImageResolver struct {
	baseDir  string
	maxBytes int64
	tempDir  string
	logger   *zap.Logger
}

var _ interfaces.IImageResolver = (*ImageResolver)(nil)

func NewImageResolver(baseDir string, maxBytes int64, logger *zap.Logger) *ImageResolver {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if baseDir != "" {
		if abs, err := filepath.Abs(baseDir); err == nil {
			baseDir = abs
		}
	}
	return &ImageResolver{
		baseDir:  baseDir,
		maxBytes: maxBytes,
		logger:   logger.Named("image.resolver"),
	}
}

func (r *ImageResolver) Resolve(ctx context.Context, ref string) (interfaces.ResolvedImage, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.ResolvedImage{}, err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return interfaces.ResolvedImage{}, interfaces.ErrImageNotFound
	}

	if payload, ok := dataURIPayload(ref); ok {
		return r.resolveEncoded(payload)
	}

	// A path outside the base directory is never opened, but the reference may
	// still be base64 (JPEG payloads start with "/9j/").
	if path, ok := r.localPath(ref); ok {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			return r.resolveFile(path, info)
		case err == nil:
			return interfaces.ResolvedImage{}, fmt.Errorf("%w: %s is not a regular file", interfaces.ErrImageNotFound, ref)
		case !errors.Is(err, fs.ErrNotExist) && !isNameError(err):
			return interfaces.ResolvedImage{}, err
		}
	}

	if looksLikeBase64(ref) {
		return r.resolveEncoded(ref)
	}
	return interfaces.ResolvedImage{}, fmt.Errorf("%w: %s", interfaces.ErrImageNotFound, ref)
}

// localPath maps ref onto the filesystem. With a base directory set, only
// paths that stay inside it are allowed.
func (r *ImageResolver) localPath(ref string) (string, bool) {
	if r.baseDir == "" {
		return filepath.Clean(ref), true
	}
	path := filepath.Clean(ref)
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}
	rel, err := filepath.Rel(r.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		r.logger.Warn("image path outside base dir", zap.String("path", path))
		return "", false
	}
	return path, true
}

func (r *ImageResolver) resolveFile(path string, info fs.FileInfo) (interfaces.ResolvedImage, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return interfaces.ResolvedImage{}, fmt.Errorf("failed to read image: %w", err)
	}
	if !isImage(mtype) {
		return interfaces.ResolvedImage{}, fmt.Errorf("%w: %s", interfaces.ErrImageNotSupported, mtype.String())
	}
	return interfaces.ResolvedImage{
		Path:     path,
		MIMEType: baseMIME(mtype),
		Name:     filepath.Base(path),
		Size:     info.Size(),
		Release:  func() {},
	}, nil
}

func (r *ImageResolver) resolveEncoded(payload string) (interfaces.ResolvedImage, error) {
	data, err := r.decode(payload)
	if err != nil {
		if errors.Is(err, errImageTooLarge) {
			return interfaces.ResolvedImage{}, fmt.Errorf("%w: %w", interfaces.ErrImageNotSupported, err)
		}
		return interfaces.ResolvedImage{}, fmt.Errorf("%w: invalid base64 content", interfaces.ErrImageNotSupported)
	}

	mtype := mimetype.Detect(data)
	if !isImage(mtype) {
		return interfaces.ResolvedImage{}, fmt.Errorf("%w: %s", interfaces.ErrImageNotSupported, mtype.String())
	}

	f, err := os.CreateTemp(r.tempDir, "measure-*"+mtype.Extension())
	if err != nil {
		return interfaces.ResolvedImage{}, fmt.Errorf("failed to create temp image: %w", err)
	}
	path := f.Name()
	release := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("failed to remove temp image", zap.String("path", path), zap.Error(err))
		}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		release()
		return interfaces.ResolvedImage{}, fmt.Errorf("failed to write temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		release()
		return interfaces.ResolvedImage{}, fmt.Errorf("failed to write temp image: %w", err)
	}

	return interfaces.ResolvedImage{
		Path:     path,
		MIMEType: baseMIME(mtype),
		Name:     filepath.Base(path),
		Size:     int64(len(data)),
		Release:  release,
	}, nil
}

func (r *ImageResolver) decode(payload string) ([]byte, error) {
	payload = strings.Map(func(c rune) rune {
		switch c {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return c
	}, payload)

	enc := base64.StdEncoding
	if !strings.HasSuffix(payload, "=") && len(payload)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	if int64(enc.DecodedLen(len(payload))) > r.maxBytes+2 {
		return nil, errImageTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(base64.NewDecoder(enc, strings.NewReader(payload)), r.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxBytes {
		return nil, errImageTooLarge
	}
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	return data, nil
}

// dataURIPayload returns the base64 part of a data:<mime>;base64,<payload> URI.
func dataURIPayload(ref string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(ref), "data:") {
		return "", false
	}
	header, payload, ok := strings.Cut(ref, ",")
	if !ok || !strings.HasSuffix(strings.ToLower(header), ";base64") {
		return "", false
	}
	return payload, true
}

func looksLikeBase64(s string) bool {
	if len(s) < 16 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=', c == '\n', c == '\r':
		default:
			return false
		}
	}
	return true
}

// long base64 strings make os.Stat fail with ENAMETOOLONG
func isNameError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && strings.Contains(strings.ToLower(pathErr.Err.Error()), "name too long")
}

func isImage(m *mimetype.MIME) bool {
	return strings.HasPrefix(m.String(), "image/")
}

func baseMIME(m *mimetype.MIME) string {
	mediaType, _, _ := strings.Cut(m.String(), ";")
	return mediaType
}
