package eval

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv"
)

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// FoldCache stores the results of completed folds so that a repeated
// evaluation with the same split can skip them.
type FoldCache interface {
	Get(key string) (FoldResult, bool)
	Set(key string, result FoldResult) error
}

// foldKey identifies a fold of a reproducible split of a corpus, evaluated
// with the model configuration identified by model.
func foldKey(model, fingerprint string, k int, seed int64, shuffled bool, fold int) string {
	return fmt.Sprintf("%s%s%04d%t%d%04d", fingerprint, model, k, shuffled, seed, fold)
}

type mapFoldCache struct {
	m map[string]FoldResult
}

func (m mapFoldCache) Get(key string) (FoldResult, bool) {
	r, ok := m.m[key]
	return r, ok
}

func (m mapFoldCache) Set(key string, result FoldResult) error {
	m.m[key] = result
	return nil
}

// NewMapFoldCache creates an in-memory fold cache out of a regular go map.
func NewMapFoldCache() FoldCache {
	return mapFoldCache{m: make(map[string]FoldResult)}
}

type diskvFoldCache struct {
	*diskv.Diskv
}

func (d diskvFoldCache) Get(key string) (FoldResult, bool) {
	b, err := d.Read(key)
	if err != nil {
		return FoldResult{}, false
	}
	var r FoldResult
	if err := json.Unmarshal(b, &r); err != nil {
		return FoldResult{}, false
	}
	return r, true
}

func (d diskvFoldCache) Set(key string, result FoldResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return d.Write(key, b)
}

// NewDiskvFoldCache creates an on-disk fold cache with the specified diskv store.
func NewDiskvFoldCache(dv *diskv.Diskv) FoldCache {
	return diskvFoldCache{dv}
}

// NewDirFoldCache creates an on-disk fold cache rooted at dir.
func NewDirFoldCache(dir string) FoldCache {
	return NewDiskvFoldCache(diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    BlockTransform(8),
		CacheSizeMax: 4096 * 1024,
	}))
}
