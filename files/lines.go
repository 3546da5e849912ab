// SPDX-License-Identifier: MIT

// Package files: memory-mapped line reading.

package files

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/numflow/stream"
)

// mapFile maps location read-only. An empty file yields nil data, since a
// zero-length mapping is rejected by the OS. release must always be called.
func mapFile(location string) (data []byte, release func() error, err error) {
	f, err := os.Open(FilePath(location))
	if err != nil {
		return nil, nil, filesErrorf("open", location, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, filesErrorf("stat", location, err)
	}
	if info.Size() == 0 {
		return nil, f.Close, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, nil, filesErrorf("mmap", location, err)
	}

	return m, func() error {
		uerr := m.Unmap()
		if cerr := f.Close(); uerr == nil {
			uerr = cerr
		}
		return uerr
	}, nil
}

// ReadLines streams the '\n'-separated lines of location from a read-only
// memory mapping. A trailing newline does not produce a final empty line;
// an empty file produces none.
func ReadLines(location string, opts ...stream.Option) *stream.Stream[string] {
	return stream.Create(func(obs stream.Observer[string]) {
		data, release, err := mapFile(location)
		if err != nil {
			obs.Error(err)
			return
		}
		for len(data) > 0 {
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				obs.Push(string(data))
				break
			}
			obs.Push(string(data[:i]))
			data = data[i+1:]
		}
		if err := release(); err != nil {
			obs.Error(filesErrorf("unmap", location, err))
			return
		}
		obs.End()
	}, opts...)
}
