// Package store keeps snapshots of named string lists in a sqlite database.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spicery/fwdlist/pkg/fwdlist"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrListNotFound is returned when no list is saved under the given name.
var ErrListNotFound = errors.New("list not found")

// Store handles saving and loading lists.
type Store struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// Open opens, creating if needed, the database at dbPath. A nil logger means
// the logrus standard logger.
func Open(dbPath string, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	return &Store{
		db:  db,
		log: log.WithField("db", dbPath),
	}, nil
}

// Migrate performs database migrations.
func (s *Store) Migrate() error {
	if err := Migrate(s.db); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	return nil
}

// CheckMigration checks if the database schema is up to date.
func (s *Store) CheckMigration() (bool, error) {
	return CheckMigration(s.db)
}

// Save writes the contents of l under name, replacing any earlier snapshot,
// and returns the new snapshot id.
func (s *Store) Save(name string, l *fwdlist.List[string]) (string, error) {
	if name == "" {
		return "", errors.New("list name must not be empty")
	}
	record := ListRecord{
		Name:       name,
		SnapshotID: uuid.NewString(),
		Size:       l.Size(),
		SavedAt:    time.Now().UTC(),
	}

	// Elements are recorded in iteration order.
	elements := make([]ElementRecord, 0, l.Size())
	for v := range l.All() {
		elements = append(elements, ElementRecord{
			ListName: name,
			Position: len(elements),
			Value:    v,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_name = ?", name).Delete(&ElementRecord{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete previous elements")
		}
		if err := tx.Save(&record).Error; err != nil {
			return errors.Wrap(err, "failed to save list record")
		}
		if len(elements) > 0 {
			if err := tx.CreateInBatches(elements, 500).Error; err != nil {
				return errors.Wrap(err, "failed to save elements")
			}
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "saving list %q", name)
	}

	s.log.WithFields(logrus.Fields{"list": name, "snapshot": record.SnapshotID, "size": record.Size}).Info("list saved")
	return record.SnapshotID, nil
}

// Load rebuilds the list saved under name, front to back.
func (s *Store) Load(name string) (*fwdlist.List[string], error) {
	record, err := s.record(name)
	if err != nil {
		return nil, err
	}

	var elements []ElementRecord
	err = s.db.Where("list_name = ?", name).Order("position").Find(&elements).Error
	if err != nil {
		return nil, errors.Wrapf(err, "loading elements of list %q", name)
	}
	if len(elements) != record.Size {
		return nil, errors.Errorf("list %q: snapshot %s records %d elements but %d are stored", name, record.SnapshotID, record.Size, len(elements))
	}

	l := fwdlist.New[string]()
	it := l.End()
	for _, e := range elements {
		it = l.InsertAfter(it, e.Value)
	}

	s.log.WithFields(logrus.Fields{"list": name, "snapshot": record.SnapshotID}).Debug("list loaded")
	return l, nil
}

// SnapshotID returns the id of the snapshot currently saved under name.
func (s *Store) SnapshotID(name string) (string, error) {
	record, err := s.record(name)
	if err != nil {
		return "", err
	}
	return record.SnapshotID, nil
}

func (s *Store) record(name string) (*ListRecord, error) {
	var record ListRecord
	err := s.db.Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrListNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading list %q", name)
	}
	return &record, nil
}

// Names returns the names of all saved lists in sorted order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.Model(&ListRecord{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing saved lists")
	}
	return names, nil
}

// Delete removes the list saved under name.
func (s *Store) Delete(name string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("name = ?", name).Delete(&ListRecord{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.Wrapf(ErrListNotFound, "%q", name)
		}
		return tx.Where("list_name = ?", name).Delete(&ElementRecord{}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "deleting list %q", name)
	}
	s.log.WithField("list", name).Info("list deleted")
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
