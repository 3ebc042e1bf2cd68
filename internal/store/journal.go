// Package store keeps a local journal of print jobs so a terminal can show
// reprint history even when offline.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PrintStatus is the recorded outcome of a print job.
type PrintStatus string

const (
	StatusPrinted PrintStatus = "printed"
	StatusFailed  PrintStatus = "failed"
)

// PrintRecord represents one print attempt in the local journal.
type PrintRecord struct {
	ID        uint        `gorm:"primaryKey"`
	SaleID    int64       `gorm:"index;not null"`
	InvoiceNo string      `gorm:"not null"`
	Surface   string      `gorm:"not null"`
	Status    PrintStatus `gorm:"not null"`
	Error     string
	CreatedAt time.Time
}

// Journal is the sqlite-backed print history.
type Journal struct {
	db *gorm.DB
}

// Open opens (or creates) the journal database at path. Use ":memory:" for
// an ephemeral journal.
func Open(path string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open journal %s: %w", path, err)
	}
	if err := db.AutoMigrate(&PrintRecord{}); err != nil {
		return nil, fmt.Errorf("store: migrate journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Record appends one print attempt. printErr may be nil.
func (j *Journal) Record(ctx context.Context, saleID int64, invoiceNo, surface string, printErr error) error {
	rec := PrintRecord{
		SaleID:    saleID,
		InvoiceNo: invoiceNo,
		Surface:   surface,
		Status:    StatusPrinted,
	}
	if printErr != nil {
		rec.Status = StatusFailed
		rec.Error = printErr.Error()
	}
	if err := j.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("store: record print: %w", err)
	}
	return nil
}

// Recent returns the latest print attempts, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]PrintRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []PrintRecord
	err := j.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("store: list prints: %w", err)
	}
	return records, nil
}

// ForSale returns every print attempt for one sale, newest first.
func (j *Journal) ForSale(ctx context.Context, saleID int64) ([]PrintRecord, error) {
	var records []PrintRecord
	err := j.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("store: list prints for sale %d: %w", saleID, err)
	}
	return records, nil
}
