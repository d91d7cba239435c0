package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/utils"
)

// GormStore keeps each collection as a single row in the collections table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Load(key string) ([]byte, bool) {
	var row models.Collection
	if err := s.DB.First(&row, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("load collection %q: %v", key, err)
		}
		return nil, false
	}
	return []byte(row.Value), true
}

func (s *GormStore) Save(key string, data []byte) error {
	row := models.Collection{Key: key, Value: string(data)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
