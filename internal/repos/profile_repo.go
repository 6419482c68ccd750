package repos

import (
	"crypto/cipher"
	"crypto/rand"
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/chacha20poly1305"
)

// ProfileRepo keeps profile records as AEAD-sealed JSON blobs, one row per
// logical key. The key name is bound into the seal as additional data, so a
// blob copied under a different key fails to open.
type ProfileRepo struct {
	db   *sqlx.DB
	aead cipher.AEAD
}

func NewProfileRepo(db *sqlx.DB, key []byte) (*ProfileRepo, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "profile key")
	}
	return &ProfileRepo{db: db, aead: aead}, nil
}

// Put overwrites the record under key with a freshly sealed blob.
func (r *ProfileRepo) Put(key string, blob []byte) error {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := r.aead.Seal(nil, nonce, blob, []byte(key))
	_, err := r.db.Exec(`
		INSERT INTO profile_blobs(key,nonce,sealed,updated_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET nonce = excluded.nonce, sealed = excluded.sealed, updated_at = CURRENT_TIMESTAMP
	`, key, nonce, sealed)
	return err
}

// Get returns the opened blob and whether a record exists. An unsealing
// failure means local storage corruption and is surfaced as an error.
func (r *ProfileRepo) Get(key string) ([]byte, bool, error) {
	var row struct {
		Nonce  []byte `db:"nonce"`
		Sealed []byte `db:"sealed"`
	}
	if err := r.db.Get(&row, `SELECT nonce, sealed FROM profile_blobs WHERE key = ?`, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	blob, err := r.aead.Open(nil, row.Nonce, row.Sealed, []byte(key))
	if err != nil {
		return nil, false, errors.Wrap(err, "unseal profile record")
	}
	return blob, true, nil
}

func (r *ProfileRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM profile_blobs WHERE key = ?`, key)
	return err
}
