package database

import (
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

// Database groups the typed table clients. Accessors without the Public
// prefix run with the elevated role.
type Database struct {
	db            *gorm.DB
	aboutSections *Table[models.AboutSection]
	projects      *Table[models.Project]
	skills        *Table[models.Skill]
	contacts      *Table[models.ContactMessage]
	hero          *Table[models.HeroContent]
	certificates  *CertificateRepo
}

// New initializes a new Database struct with each table sharing one GORM instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		aboutSections: NewTable[models.AboutSection](db, AboutSections),
		projects:      NewTable[models.Project](db, Projects),
		skills:        NewTable[models.Skill](db, Skills),
		contacts:      NewTable[models.ContactMessage](db, Contacts),
		hero:          NewTable[models.HeroContent](db, Hero),
		certificates:  NewCertificateRepo(db),
	}
}

func (d Database) AboutSections() *Table[models.AboutSection] {
	return d.aboutSections.Elevated()
}

func (d Database) Projects() *Table[models.Project] {
	return d.projects.Elevated()
}

func (d Database) PublicAboutSections() *Table[models.AboutSection] {
	return d.aboutSections
}

func (d Database) PublicProjects() *Table[models.Project] {
	return d.projects
}

func (d Database) Skills() *Table[models.Skill] {
	return d.skills
}

func (d Database) Contacts() *Table[models.ContactMessage] {
	return d.contacts
}

func (d Database) Hero() *Table[models.HeroContent] {
	return d.hero
}

func (d Database) Certificates() *CertificateRepo {
	return d.certificates
}

// DB exposes the pool for maintenance modes and health checks.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Migrate creates any missing tables and columns. The hosted schema stays
// authoritative; this only serves fresh local databases and tests.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.AboutSection{},
		&models.Project{},
		&models.Skill{},
		&models.ContactMessage{},
		&models.HeroContent{},
		&certificateRecord{},
	)
}
