// Package ldbtable implements an mdp.ValueTable that keeps action values
// on disk in a LevelDB database, rather than in memory.
//
// It is substantially slower than mdp.MemoryTable but can scale to state
// spaces whose action-value function does not fit in memory. Clear removes
// every key, so a Solver's Initialize starts from an empty table even when
// the database directory is reused.
package ldbtable

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/golang/glog"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/timpalpant/go-mdp"
)

const valuePrefix = "q:"

type Table struct {
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

var _ mdp.ValueTable = &Table{}

func New(db *leveldb.DB) *Table {
	return &Table{db: db}
}

// Open opens (or creates) a LevelDB database in dir and returns a Table backed by it.
func Open(dir string) (*Table, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{})
	if err != nil {
		return nil, err
	}

	return New(db), nil
}

func (t *Table) Close() error {
	return t.db.Close()
}

func (t *Table) Get(key string) (float64, bool) {
	buf, err := t.db.Get([]byte(valuePrefix+key), t.rOpts)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return 0, false
		}

		panic(err)
	}

	return decodeF64(buf), true
}

func (t *Table) Put(key string, value float64) {
	if err := t.db.Put([]byte(valuePrefix+key), encodeF64(value), t.wOpts); err != nil {
		panic(err)
	}
}

func (t *Table) Clear() {
	iter := t.db.NewIterator(util.BytesPrefix([]byte(valuePrefix)), t.rOpts)
	defer iter.Release()

	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}

	if err := t.db.Write(batch, t.wOpts); err != nil {
		panic(err)
	}

	glog.V(1).Infof("Cleared %d action values", batch.Len())
}

// Len returns the number of stored values.
func (t *Table) Len() int {
	iter := t.db.NewIterator(util.BytesPrefix([]byte(valuePrefix)), t.rOpts)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n++
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}

	return n
}

func encodeF64(x float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
	return buf
}

func decodeF64(buf []byte) float64 {
	if len(buf) != 8 {
		panic(fmt.Errorf("invalid encoded float64 has len %d", len(buf)))
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}
