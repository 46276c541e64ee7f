//go:build !unix && !windows

package fs

import (
	"fmt"
	"os"
)

// portableMappedView loads the whole file with a single read. Platforms
// without a mapping primitive still honor the same view contract.
type portableMappedView struct {
	data []byte
}

func openMappedView(path string) (mappedView, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return &portableMappedView{data: data}, nil
}

func (v *portableMappedView) Bytes() []byte {
	return v.data
}

func (v *portableMappedView) Close() error {
	v.data = nil
	return nil
}
