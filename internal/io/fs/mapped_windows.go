//go:build windows

package fs

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsMappedView is a file mapping backed view. Empty files carry no
// mapping, CreateFileMapping rejects zero length maps.
type windowsMappedView struct {
	file    *os.File
	mapping windows.Handle
	addr    uintptr
	data    []byte
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
		return &windowsMappedView{file: f}, nil
	}

	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil,
		windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to map %s: %w", path, err)
	}
	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		windows.CloseHandle(mapping)
		f.Close()
		return nil, fmt.Errorf("unable to view %s: %w", path, err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &windowsMappedView{file: f, mapping: mapping, addr: addr, data: data}, nil
}

func (v *windowsMappedView) Bytes() []byte {
	return v.data
}

func (v *windowsMappedView) Close() error {
	var err error
	if v.data != nil {
		err = windows.UnmapViewOfFile(v.addr)
		v.data = nil
	}
	if v.mapping != 0 {
		if cerr := windows.CloseHandle(v.mapping); err == nil {
			err = cerr
		}
		v.mapping = 0
	}
	if cerr := v.file.Close(); err == nil {
		err = cerr
	}
	return err
}
