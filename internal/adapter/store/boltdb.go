package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"doccov/internal/domain"
	"doccov/internal/port"
)

// SchemaVersion stamps the store layout. A mismatch forces a rebuild on
// the next scan.
const SchemaVersion = 1

var (
	bucketFiles    = []byte("files")
	bucketAnalyses = []byte("analyses")
	bucketMeta     = []byte("meta")
	keyVersion     = []byte("schema_version")
	keyLastScan    = []byte("last_scan")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketFiles, bucketAnalyses, bucketMeta}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type fileMeta struct {
	ModTime int64  `json:"mod_time"`
	Hash    string `json:"hash"`
}

type analysisMeta struct {
	Outline []domain.Unit `json:"outline"`
	Report  domain.Report `json:"report"`
}

func (s *BoltStore) PutFile(meta port.FileMeta) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(fileMeta{
			ModTime: meta.ModTime,
			Hash:    meta.Hash,
		})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(meta.Path), data)
	})
}

func (s *BoltStore) GetFile(path string) (port.FileMeta, bool, error) {
	var meta port.FileMeta
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return nil
		}
		var fm fileMeta
		if err := json.Unmarshal(data, &fm); err != nil {
			return err
		}
		meta = port.FileMeta{
			Path:    path,
			ModTime: fm.ModTime,
			Hash:    fm.Hash,
		}
		found = true
		return nil
	})
	return meta, found, err
}

func (s *BoltStore) ListFiles() ([]port.FileMeta, error) {
	var files []port.FileMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketFiles)
		return b.ForEach(func(k, v []byte) error {
			var fm fileMeta
			if err := json.Unmarshal(v, &fm); err != nil {
				return err
			}
			files = append(files, port.FileMeta{
				Path:    string(k),
				ModTime: fm.ModTime,
				Hash:    fm.Hash,
			})
			return nil
		})
	})
	return files, err
}

func (s *BoltStore) DeleteFile(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketFiles).Delete([]byte(path)); err != nil {
			return err
		}
		return tx.Bucket(bucketAnalyses).Delete([]byte(path))
	})
}

func (s *BoltStore) PutAnalysis(path string, outline []domain.Unit, report domain.Report) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(analysisMeta{
			Outline: outline,
			Report:  report,
		})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketAnalyses).Put([]byte(path), data)
	})
}

func (s *BoltStore) GetAnalysis(path string) ([]domain.Unit, domain.Report, error) {
	var meta analysisMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAnalyses).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("no analysis stored for %s", path)
		}
		return json.Unmarshal(data, &meta)
	})
	return meta.Outline, meta.Report, err
}

// Clear drops all stored files and analyses and restamps the schema.
func (s *BoltStore) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketAnalyses} {
			if err := tx.DeleteBucket(b); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.stampVersion()
}

// NeedsRebuild reports whether the stored schema version differs from
// the current one. A fresh store is stamped instead.
func (s *BoltStore) NeedsRebuild() (bool, error) {
	var stored int
	var stamped bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyVersion)
		if data == nil {
			return nil
		}
		stamped = true
		return json.Unmarshal(data, &stored)
	})
	if err != nil {
		return false, err
	}
	if !stamped {
		return false, s.stampVersion()
	}
	return stored != SchemaVersion, nil
}

func (s *BoltStore) stampVersion() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(SchemaVersion)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyVersion, data)
	})
}

func (s *BoltStore) SetLastScan(t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(t.Unix())
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyLastScan, data)
	})
}

func (s *BoltStore) LastScan() (time.Time, bool, error) {
	var unix int64
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyLastScan)
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &unix)
	})
	if err != nil || !found {
		return time.Time{}, false, err
	}
	return time.Unix(unix, 0), true, nil
}
