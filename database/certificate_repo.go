package database

import (
	"context"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

// CertificateRepo reads the certificates table without assuming its columns.
type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

func (r *CertificateRepo) List(ctx context.Context) ([]models.Certificate, error) {
	var rows []map[string]any
	if err := r.db.WithContext(ctx).Table(models.Certificate{}.TableName()).Find(&rows).Error; err != nil {
		return nil, errs.NewBackendError("list", "certificates", err)
	}

	certs := make([]models.Certificate, 0, len(rows))
	for _, row := range rows {
		certs = append(certs, models.CertificateFromRow(row))
	}
	return certs, nil
}

func (r *CertificateRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Table(models.Certificate{}.TableName()).Count(&n).Error; err != nil {
		return 0, errs.NewBackendError("count", "certificates", err)
	}
	return n, nil
}

// certificateRecord is the minimal shape created by Migrate.
type certificateRecord struct {
	ID     uint   `gorm:"primaryKey"`
	CertID string `gorm:"type:text;not null"`
}

func (certificateRecord) TableName() string { return "certificates" }
