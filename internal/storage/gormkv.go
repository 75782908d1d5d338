package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord: uma coleção serializada por linha.
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"type:jsonb;not null"`
}

func (KVRecord) TableName() string { return "kv_records" }

type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("migração da tabela kv_records falhou: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var rec KVRecord
	err := b.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leitura da chave %q falhou: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (b *GormBackend) Save(ctx context.Context, key string, value []byte) error {
	rec := KVRecord{Key: key, Value: string(value)}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("gravação da chave %q falhou: %w", key, err)
	}
	return nil
}
