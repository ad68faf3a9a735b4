package insight

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/insightwires/newsmeta/internal/db"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// The in-memory database exists per connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedInsight(t *testing.T, gdb *gorm.DB, row db.InsightRow) {
	t.Helper()
	if row.SystemTimestamp.IsZero() {
		row.SystemTimestamp = row.PublishedDate
	}
	if err := gdb.Create(&row).Error; err != nil {
		t.Fatalf("seed insight %s: %v", row.UUID, err)
	}
}

func seedCompanyMapping(t *testing.T, gdb *gorm.DB, uuid string, companyID int, ts time.Time) {
	t.Helper()
	m := db.CompanyMapping{InsightwireUUID: uuid, CompanyID: companyID, SystemTimestamp: ts}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("seed company mapping %s->%d: %v", uuid, companyID, err)
	}
}

func seedSentimentMapping(t *testing.T, gdb *gorm.DB, uuid string, sentimentID int, ts time.Time) {
	t.Helper()
	m := db.SentimentMapping{InsightwireUUID: uuid, SentimentTypeID: sentimentID, SystemTimestamp: ts}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("seed sentiment mapping %s->%d: %v", uuid, sentimentID, err)
	}
}

func seedIndustryMapping(t *testing.T, gdb *gorm.DB, uuid string, industryID int, ts time.Time) {
	t.Helper()
	m := db.IndustryMapping{InsightwireUUID: uuid, IndustryTypeID: industryID, SystemTimestamp: ts}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("seed industry mapping %s->%d: %v", uuid, industryID, err)
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}
