//go:build unix

package fs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// unixMappedView is an mmap backed view. Empty files carry no mapping at
// all since mapping zero bytes is an error.
type unixMappedView struct {
	file *os.File
	data []byte
}

// openMappedView maps the whole file read only.
func openMappedView(path string) (mappedView, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return &unixMappedView{file: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to map %s: %w", path, err)
	}
	return &unixMappedView{file: f, data: data}, nil
}

func (v *unixMappedView) Bytes() []byte {
	return v.data
}

func (v *unixMappedView) Close() error {
	var err error
	if v.data != nil {
		err = unix.Munmap(v.data)
		v.data = nil
	}
	if cerr := v.file.Close(); err == nil {
		err = cerr
	}
	return err
}
