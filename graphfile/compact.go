// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/pathsearch/core"
)

// EncodeCompact writes ds as zstd-compressed msgpack.
func EncodeCompact(w io.Writer, ds core.Dataset) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("graphfile: zstd writer: %w", err)
	}
	if err = msgpack.NewEncoder(zw).Encode(ds); err != nil {
		zw.Close()
		return fmt.Errorf("graphfile: msgpack encode: %w", err)
	}

	return zw.Close()
}

// DecodeCompact reads a dataset written by EncodeCompact.
func DecodeCompact(r io.Reader) (core.Dataset, error) {
	var ds core.Dataset
	zr, err := zstd.NewReader(r)
	if err != nil {
		return ds, fmt.Errorf("%w: zstd: %v", ErrBadFormat, err)
	}
	defer zr.Close()

	if err = msgpack.NewDecoder(zr).Decode(&ds); err != nil {
		return core.Dataset{}, fmt.Errorf("%w: msgpack: %v", ErrBadFormat, err)
	}

	return ds, nil
}
