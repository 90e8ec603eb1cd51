package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"waifulist/core/errs"
	"waifulist/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserSnapshot is the last successfully fetched payload of a user.
type UserSnapshot struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:32"`
	Payload   string    `gorm:"column:payload;type:text;not null"`
	FetchedAt time.Time `gorm:"column:fetched_at;not null"`
}

// TableName overrides the table name used by UserSnapshot.
func (UserSnapshot) TableName() string {
	return "user_snapshots"
}

// Store persists user snapshots. A Store without a database is disabled and
// every call returns errs.ErrDisabled.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore creates a store backed by db, which may be nil.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Enabled reports whether the store has a database.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Migrate creates or updates the snapshot table.
func (s *Store) Migrate() error {
	if !s.Enabled() {
		return errs.ErrDisabled
	}
	return s.db.AutoMigrate(&UserSnapshot{})
}

// Save replaces the snapshot of u.
func (s *Store) Save(ctx context.Context, u reconcile.User) error {
	if !s.Enabled() {
		return errs.ErrDisabled
	}

	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", u.ID, err)
	}

	snap := UserSnapshot{UserID: u.ID, Payload: string(payload), FetchedAt: s.now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", u.ID, err)
	}
	return nil
}

// Load returns the stored snapshot of a user and when it was fetched.
func (s *Store) Load(ctx context.Context, userID string) (reconcile.User, time.Time, error) {
	if !s.Enabled() {
		return reconcile.User{}, time.Time{}, errs.ErrDisabled
	}

	var snap UserSnapshot
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reconcile.User{}, time.Time{}, fmt.Errorf("snapshot %s: %w", userID, errs.ErrNotFound)
	}
	if err != nil {
		return reconcile.User{}, time.Time{}, fmt.Errorf("load snapshot %s: %w", userID, err)
	}

	var u reconcile.User
	if err := json.Unmarshal([]byte(snap.Payload), &u); err != nil {
		return reconcile.User{}, time.Time{}, fmt.Errorf("decode snapshot %s: %w", userID, err)
	}
	return u, snap.FetchedAt, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return errs.ErrDisabled
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
