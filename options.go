// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump

import "regexp"

// Option configures a Decoder.
type Option func(*Options)

// Options holds decoder configuration. NewDecoder applies the defaults
// before running the option functions.
type Options struct {
	// TabularPattern is matched against the first element line of a
	// sequence to detect the dense tabular shape. If the pattern contains
	// a capture group, the group fixes the element type tag for the whole
	// row set; otherwise the tag is taken from the last parenthesized
	// group of the header line.
	TabularPattern *regexp.Regexp

	// TabularColumns is the number of values packed per tabular row. A row
	// header is re-consumed every TabularColumns elements.
	TabularColumns int

	// MaxDepth bounds record/sequence nesting. 0 means unlimited.
	MaxDepth int
}

// tabularRowPattern matches row headers like "data (float) #25:". Editor
// revisions disagree on the exact shape, so it is only a default.
var tabularRowPattern = regexp.MustCompile(`data \(([0-9a-zA-Z ]+)\) #[0-9]+:`)

func defaultOptions() Options {
	return Options{
		TabularPattern: tabularRowPattern,
		TabularColumns: 25,
	}
}

// WithTabularPattern overrides the dense-tabular row header detection
// pattern.
func WithTabularPattern(re *regexp.Regexp) Option {
	return func(opts *Options) {
		opts.TabularPattern = re
	}
}

// WithTabularColumns overrides the number of values per tabular row.
func WithTabularColumns(n int) Option {
	return func(opts *Options) {
		opts.TabularColumns = n
	}
}

// WithMaxDepth bounds the nesting depth of records and sequences.
func WithMaxDepth(n int) Option {
	return func(opts *Options) {
		opts.MaxDepth = n
	}
}
