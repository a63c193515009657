package service

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// archive accumulates named buffers into one zip stream.
type archive struct {
	buf bytes.Buffer
	zw  *zip.Writer
	n   int
}

func newArchive() *archive {
	a := &archive{}
	a.zw = zip.NewWriter(&a.buf)
	return a
}

func (a *archive) Add(name string, data []byte) error {
	w, err := a.zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create zip entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	a.n++
	return nil
}

func (a *archive) Len() int {
	return a.n
}

// Bytes finalizes the archive. No entries can be added afterwards.
func (a *archive) Bytes() ([]byte, error) {
	if err := a.zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return a.buf.Bytes(), nil
}
