// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI under a signal-aware context and releases the local
// storage when the UI exits.
package client
