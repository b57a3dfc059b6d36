// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mail is a single outbound HTML email.
type Mail struct {
	To      string
	Subject string
	HTML    string
}
