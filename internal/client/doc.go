// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle of the sync modal: the terminal UI runs until
// the user quits or the process receives SIGINT/SIGTERM.
package client
