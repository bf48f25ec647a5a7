// database/store.go - Profile key-value store
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"financequest/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRecord is one roster entry: an opaque user id mapped to the
// profile JSON document. Position preserves insertion order for roster
// reads; last write wins, there are no other consistency guarantees.
type ProfileRecord struct {
	Position  int64     `gorm:"primaryKey;autoIncrement" json:"position"`
	UserID    string    `gorm:"uniqueIndex;not null;size:64" json:"user_id"`
	Doc       []byte    `gorm:"type:jsonb;not null" json:"doc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProfileRecord) TableName() string {
	return "profile_records"
}

// ProfileStore is the data-access collaborator for user profiles.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore wraps a gorm connection.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// GetStore returns a store over the default connection.
func GetStore() *ProfileStore {
	return NewProfileStore(GetDB())
}

// ReadAll returns the full roster in insertion order. An empty roster is
// an empty slice, not an error.
func (s *ProfileStore) ReadAll() ([]models.UserProfile, error) {
	var records []ProfileRecord
	if err := s.db.Order("position ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	roster := make([]models.UserProfile, 0, len(records))
	for _, rec := range records {
		var p models.UserProfile
		if err := json.Unmarshal(rec.Doc, &p); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", rec.UserID, err)
		}
		roster = append(roster, p)
	}
	return roster, nil
}

// ReadOne returns the profile for the given id, or nil when absent.
func (s *ProfileStore) ReadOne(id string) (*models.UserProfile, error) {
	var rec ProfileRecord
	err := s.db.Where("user_id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", id, err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(rec.Doc, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return &p, nil
}

// Upsert writes the profile keyed by its id and returns the roster after
// the write. An existing document is merged with a shallow field
// overwrite; a new one is appended at the end of the roster.
func (s *ProfileStore) Upsert(p models.UserProfile) ([]models.UserProfile, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile %s: %w", p.ID, err)
	}

	var rec ProfileRecord
	err = s.db.Where("user_id = ?", p.ID).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = ProfileRecord{UserID: p.ID, Doc: doc}
		if err := s.db.Create(&rec).Error; err != nil {
			return nil, fmt.Errorf("create profile %s: %w", p.ID, err)
		}
	case err != nil:
		return nil, fmt.Errorf("read profile %s: %w", p.ID, err)
	default:
		merged, err := mergeDocs(rec.Doc, doc)
		if err != nil {
			return nil, fmt.Errorf("merge profile %s: %w", p.ID, err)
		}
		rec.Doc = merged
		if err := s.db.Save(&rec).Error; err != nil {
			return nil, fmt.Errorf("update profile %s: %w", p.ID, err)
		}
	}

	return s.ReadAll()
}

// Delete removes the profile with the given id if present and returns
// the remaining roster. Not used by any workflow, kept for completeness.
func (s *ProfileStore) Delete(id string) ([]models.UserProfile, error) {
	if err := s.db.Where("user_id = ?", id).Delete(&ProfileRecord{}).Error; err != nil {
		return nil, fmt.Errorf("delete profile %s: %w", id, err)
	}
	return s.ReadAll()
}

// NewLocalIdentity generates a fresh opaque user id. Persistence is on
// the client side, via the signed identity token it gets back.
func NewLocalIdentity() string {
	return "user-" + uuid.NewString()[:8]
}

// mergeDocs overwrites the top-level fields of the existing document
// with the incoming ones, leaving unmatched fields in place.
func mergeDocs(existing, incoming []byte) ([]byte, error) {
	var base, patch map[string]json.RawMessage
	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(incoming, &patch); err != nil {
		return nil, err
	}
	for k, v := range patch {
		base[k] = v
	}
	return json.Marshal(base)
}
