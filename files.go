/*
 * files.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the compression of a file.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

// CompressionFromName guesses the compression of a file from its extension:
// .gz for gzip, .zst or .zstd for zstandard. Anything else is taken as plain text.
func CompressionFromName(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return Plain
}

// zstd.Decoder has a Close method with no return value, so
// it doesn't implement io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// readCloser closes the decompressor and then the file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenFile opens the file name for reading, transparently decompressing it
// if its extension says so (see CompressionFromName).
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("Can't open file "+name, true, err, "OpenFile")
	}
	buf := bufio.NewReader(f)
	var dec io.ReadCloser
	switch CompressionFromName(name) {
	case Gzip:
		dec, err = gzip.NewReader(buf)
	case Zstd:
		var z *zstd.Decoder
		z, err = zstd.NewReader(buf)
		if err == nil {
			dec = zstdReadCloser{z}
		}
	default:
		return &readCloser{Reader: buf, closers: []io.Closer{f}}, nil
	}
	if err != nil {
		f.Close()
		return nil, NewError("Can't decompress file "+name, true, err, "OpenFile")
	}
	return &readCloser{Reader: dec, closers: []io.Closer{dec, f}}, nil
}

// writeCloser flushes and closes the compressor, and then the file.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// CreateFile creates (or truncates) the file name for writing, transparently
// compressing the output if its extension says so.
func CreateFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, NewError("Can't create file "+name, true, err, "CreateFile")
	}
	var enc io.WriteCloser
	switch CompressionFromName(name) {
	case Gzip:
		enc = gzip.NewWriter(f)
	case Zstd:
		enc, err = zstd.NewWriter(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, NewError("Can't compress file "+name, true, err, "CreateFile")
	}
	return &writeCloser{Writer: enc, closers: []io.Closer{enc, f}}, nil
}
