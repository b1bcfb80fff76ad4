package bundle

import (
	"encoding/binary"
	"time"

	"github.com/ugorji/go/codec"
	bolt "go.etcd.io/bbolt"
)

const boltFilePerms = 0o640

// BoltStore is a Housekeeper backed by a Bolt database. Each bundle has its
// own bucket, keyed by big-endian version number so that the latest version is
// always the bucket's last key.
type BoltStore struct {
	db *bolt.DB
	ch codec.Handle
}

// OpenBolt opens (creating if needed) the bundle database at the given path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, boltFilePerms, &bolt.Options{})
	if err != nil {
		return nil, err
	}

	return &BoltStore{
		db: db,
		ch: new(codec.BincHandle),
	}, nil
}

// OpenBoltRO opens the bundle database at the given path read-only.
func OpenBoltRO(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, boltFilePerms, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return &BoltStore{
		db: db,
		ch: new(codec.BincHandle),
	}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

type storedVersion struct {
	Created int64
	Files   []File
}

// Add stores a new version of the named bundle, containing the given files.
func (s *BoltStore) Add(name string, created time.Time, files []File) error {
	var encoded []byte

	codec.NewEncoderBytes(&encoded, s.ch).MustEncode(storedVersion{
		Created: created.Unix(),
		Files:   files,
	})

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		var key [8]byte

		binary.BigEndian.PutUint64(key[:], seq)

		return b.Put(key[:], encoded)
	})
}

// LatestVersion implements Housekeeper. A bundle with no stored versions is
// treated the same as a missing bundle.
func (s *BoltStore) LatestVersion(name string) (*Version, error) {
	var version *Version

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return nil
		}

		_, encoded := b.Cursor().Last()
		if encoded == nil {
			return nil
		}

		var sv storedVersion

		if err := codec.NewDecoderBytes(encoded, s.ch).Decode(&sv); err != nil {
			return err
		}

		version = &Version{
			Bundle:  name,
			Created: time.Unix(sv.Created, 0),
			Files:   sv.Files,
		}

		return nil
	})

	return version, err
}
