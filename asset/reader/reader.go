package reader

import (
	"fmt"
	"strings"

	"github.com/zhzh2001/litewq/asset"
	"github.com/zhzh2001/litewq/asset/compiler/input"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*input.Scene, error)
}

// Read scene from a local file or http(s) URL.
func ReadScene(filename string) (*input.Scene, error) {
	var reader Reader
	if strings.HasSuffix(filename, ".obj") {
		reader = newWavefrontReader()
	} else {
		return nil, fmt.Errorf("readScene: unsupported file format")
	}

	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
