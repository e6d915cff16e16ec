// Package production provides the file-facing integrations around the
// evaluator: parameter-set stores and result rendering.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/circstatx/internal/primitives"
)

// Store persists parameter sets by name.
type Store interface {
	Save(ctx context.Context, set primitives.ParamSet) error
	Load(ctx context.Context, name string) (primitives.ParamSet, error)
}

type codec struct {
	ext       string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	jsonCodec = codec{
		ext: ".json",
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
		unmarshal: json.Unmarshal,
	}
	yamlCodec = codec{
		ext:       ".yaml",
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	}
)

// fileStore keeps one <name><ext> file per set in dir.
type fileStore struct {
	dir   string
	codec codec
}

func newFileStore(dir string, c codec) (fileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fileStore{}, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return fileStore{dir: dir, codec: c}, nil
}

func (s fileStore) Save(ctx context.Context, set primitives.ParamSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid set: %w", err)
	}

	data, err := s.codec.marshal(set)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", strings.TrimPrefix(s.codec.ext, "."), err)
	}

	fn := filepath.Join(s.dir, set.Name+s.codec.ext)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (s fileStore) Load(ctx context.Context, name string) (primitives.ParamSet, error) {
	if err := ctx.Err(); err != nil {
		return primitives.ParamSet{}, err
	}
	fn := filepath.Join(s.dir, name+s.codec.ext)
	set, err := decodeFile(fn, s.codec)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.ParamSet{}, fmt.Errorf("set %q: %w", name, os.ErrNotExist)
		}
		return primitives.ParamSet{}, err
	}
	return set, nil
}

// JSONStore is a file-based store using JSON serialization.
type JSONStore struct{ fileStore }

// NewJSONStore creates a JSONStore, ensuring the directory exists.
func NewJSONStore(dir string) (*JSONStore, error) {
	fs, err := newFileStore(dir, jsonCodec)
	if err != nil {
		return nil, err
	}
	return &JSONStore{fs}, nil
}

// YAMLStore is a file-based store using YAML serialization.
type YAMLStore struct{ fileStore }

// NewYAMLStore creates a YAMLStore, ensuring the directory exists.
func NewYAMLStore(dir string) (*YAMLStore, error) {
	fs, err := newFileStore(dir, yamlCodec)
	if err != nil {
		return nil, err
	}
	return &YAMLStore{fs}, nil
}

// LoadFile reads a single parameter-set file, choosing the codec from the
// extension (.json, .yaml, .yml). The set is validated after decoding.
func LoadFile(path string) (primitives.ParamSet, error) {
	var c codec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c = jsonCodec
	case ".yaml", ".yml":
		c = yamlCodec
	default:
		return primitives.ParamSet{}, fmt.Errorf("unsupported parameter file extension %q", filepath.Ext(path))
	}
	return decodeFile(path, c)
}

func decodeFile(fn string, c codec) (primitives.ParamSet, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return primitives.ParamSet{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var set primitives.ParamSet
	if err := c.unmarshal(data, &set); err != nil {
		return primitives.ParamSet{}, fmt.Errorf("%s unmarshal: %w", strings.TrimPrefix(c.ext, "."), err)
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
	}
	if err := set.Validate(); err != nil {
		return primitives.ParamSet{}, fmt.Errorf("validation after load: %w", err)
	}
	return set, nil
}
