// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify carries one-way toast notifications from the controller to
// the host shell.
package notify

import "time"

// Variant is the severity of a toast.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

const (
	titleSuccess = "Success"
	titleError   = "Error"
)

// Toast is a single notification event.
type Toast struct {
	Title     string
	Message   string
	Variant   Variant
	CreatedAt time.Time
}

// NewToast builds a toast for message. The title is "Success" for
// [VariantSuccess] and "Error" for any other variant; message and variant are
// carried verbatim.
func NewToast(message string, variant Variant) Toast {
	title := titleError
	if variant == VariantSuccess {
		title = titleSuccess
	}

	return Toast{
		Title:   title,
		Message: message,
		Variant: variant,
	}
}
