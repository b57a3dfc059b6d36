// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// AvatarUpload is an image received from a multipart request.
type AvatarUpload struct {
	// Filename is the original client-side file name. Only its extension is
	// used, to pick the output format.
	Filename string

	// Content streams the raw image bytes.
	Content io.Reader
}
