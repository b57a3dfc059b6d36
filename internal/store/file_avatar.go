// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/disintegration/imaging"
)

const (
	avatarSize      = 250
	avatarURLPrefix = "avatars"

	// maxAvatarPixels bounds the decoded canvas, about 24 megapixels.
	maxAvatarPixels = 24_000_000
)

// fileAvatarStorage keeps one resized image per user in a local directory.
type fileAvatarStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileAvatarStorage creates dir if needed and returns an [AvatarStorage]
// writing into it.
func NewFileAvatarStorage(dir string, logger *logger.Logger) (AvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating avatar dir: %w", ErrSavingFile, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating avatar storage")
	return &fileAvatarStorage{dir: dir, logger: logger}, nil
}

// Save implements [AvatarStorage].
//
// The image is cover-cropped to 250×250 around its center, written to a
// temporary file and renamed to <userID><ext>, so a concurrent reader never
// sees a partial file. Concurrent uploads for the same user resolve as last
// writer wins. Files of the same user with another extension are removed.
func (f *fileAvatarStorage) Save(ctx context.Context, userID string, upload models.AvatarUpload) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedImage, ext)
	}

	// The header is read once for its declared size and replayed for the
	// full decode.
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(upload.Content, &header))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxAvatarPixels/cfg.Height {
		return "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupportedImage, cfg.Width, cfg.Height, maxAvatarPixels)
	}

	img, err := imaging.Decode(io.MultiReader(&header, upload.Content))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	resized := imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	tmp, err := os.CreateTemp(f.dir, "."+userID+"-*"+ext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = imaging.Encode(tmp, resized, format); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: encoding avatar: %w", ErrSavingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	fileName := userID + ext
	if err = os.Rename(tmpName, filepath.Join(f.dir, fileName)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	f.removeStale(userID, fileName)
	log.Debug().Str("user_id", userID).Str("file", fileName).Msg("avatar saved")

	return path.Join(avatarURLPrefix, fileName), nil
}

func (f *fileAvatarStorage) removeStale(userID, keep string) {
	matches, err := filepath.Glob(filepath.Join(f.dir, userID+".*"))
	if err != nil {
		return
	}
	for _, match := range matches {
		if filepath.Base(match) == keep {
			continue
		}
		if err := os.Remove(match); err != nil {
			f.logger.Warn().Err(err).Str("file", match).Msg("failed to remove stale avatar")
		}
	}
}
