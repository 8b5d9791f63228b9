package docstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/miasteczkole/backend/core"
)

// documentRow is the single table backing every collection; payloads are
// stored as JSON so the store stays schema-flexible.
type documentRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"index;size:64"`
	Payload    string
	CreatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

type GormStore struct {
	db *gorm.DB
}

var _ core.DocumentStore = (*GormStore)(nil)

// Open opens (creating if needed) the sqlite database at path and migrates
// the documents table.
func Open(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = db.AutoMigrate(&documentRow{}); err != nil {
		return nil, errors.Wrap(err, "migrating database")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "encoding document")
	}
	row := documentRow{
		ID:         uuid.NewString(),
		Collection: collection,
		Payload:    string(payload),
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.db.WithContext(ctx).Create(&row).Error; err != nil {
		// no request can recover from a failed write to the local database file
		return "", errors.Wrap(core.NewShutdownError(err.Error()), "inserting document")
	}
	return row.ID, nil
}

func (s *GormStore) List(ctx context.Context, collection string) ([]core.Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing documents")
	}

	docs := make([]core.Document, 0, len(rows))
	for _, row := range rows {
		var data map[string]interface{}
		if err = json.Unmarshal([]byte(row.Payload), &data); err != nil {
			return nil, errors.Wrapf(err, "decoding document %s", row.ID)
		}
		docs = append(docs, core.Document{
			ID:         row.ID,
			Collection: row.Collection,
			Data:       data,
			CreatedAt:  row.CreatedAt,
		})
	}
	return docs, nil
}

func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing collections")
	}
	return names, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	db, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql.DB")
	}
	return db.PingContext(ctx)
}

func (s *GormStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql.DB")
	}
	return db.Close()
}
