package storage

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is one persisted document: a state key and its JSON value.
type StateRecord struct {
	Key   string         `gorm:"column:state_key;primaryKey;size:64"`
	Value datatypes.JSON `gorm:"column:value"`
}

// GormKV persists state documents in a single database table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(key string) ([]byte, bool, error) {
	var record StateRecord
	err := s.db.First(&record, "state_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Value), true, nil
}

func (s *GormKV) Put(key string, value []byte) error {
	record := StateRecord{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error
}

func (s *GormKV) PutAll(entries map[string][]byte) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			record := StateRecord{Key: key, Value: datatypes.JSON(value)}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormKV) Delete(key string) error {
	return s.db.Delete(&StateRecord{}, "state_key = ?", key).Error
}
