package curve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

// FileStorage keeps point lists as one YAML file per key. It does not validate; build a curve from
// the loaded points to do that.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{
		root: root,
	}
}

// fileNameByKey maps key to a file directly under root; keys that name a path are rejected.
func (stg *FileStorage) fileNameByKey(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("curve: bad storage key %q: %w", key, commerr.ErrInvalidArgument)
	}

	return filepath.Join(stg.root, key+".yaml"), nil
}

func (stg *FileStorage) Load(key string) (points []Point, err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &points)

	return
}

func (stg *FileStorage) Save(key string, points []Point) (err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(points)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}

func (stg *FileStorage) LoadPolyline(key string) (*Polyline, error) {
	points, err := stg.Load(key)
	if err != nil {
		return nil, err
	}

	return NewPolyline(points)
}
