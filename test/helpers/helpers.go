// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vdtran/stockroom-be/internal/adapters/db"
	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/pkg/config"
)

// TestSiteCode is the warehouse every test fixture lives in.
const TestSiteCode = "1903"

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

const testSchema = `
CREATE TABLE IF NOT EXISTS stock_units (
	item_code      TEXT NOT NULL,
	warehouse_code TEXT NOT NULL,
	bin_code       TEXT,
	qty_on_hand    TEXT,
	hold_flag      TEXT,
	audit_flag     TEXT,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (item_code, warehouse_code)
);

CREATE TABLE IF NOT EXISTS item_master (
	item_code     TEXT PRIMARY KEY,
	item_name     TEXT,
	description   TEXT,
	category_code TEXT,
	unit          TEXT
);

CREATE TABLE IF NOT EXISTS item_detail (
	item_code    TEXT PRIMARY KEY,
	control_flag TEXT,
	pack_size    TEXT
);

CREATE TABLE IF NOT EXISTS staff_refs (
	ref_code  TEXT PRIMARY KEY,
	gen_id    TEXT NOT NULL,
	full_name TEXT NOT NULL,
	dept_id   TEXT,
	title     TEXT
);
`

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_stockroom",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_stockroom",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Create schema
	ctx := context.Background()
	_, err = database.Exec(ctx, testSchema)
	require.NoError(t, err, "Could not create schema")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// TruncateTables clears all stock tables between test cases
func (tdb *TestDB) TruncateTables(t *testing.T) {
	t.Helper()
	_, err := tdb.Database.Exec(context.Background(),
		"TRUNCATE stock_units, item_master, item_detail, staff_refs")
	require.NoError(t, err, "Could not truncate tables")
}

// SeedStockItem inserts a full item fixture (master, detail, unit rows)
func (tdb *TestDB) SeedStockItem(t *testing.T, itemCode, name, category, qty string) {
	t.Helper()
	ctx := context.Background()

	_, err := tdb.Database.Exec(ctx,
		`INSERT INTO item_master (item_code, item_name, description, category_code, unit)
		 VALUES ($1, $2, $3, $4, 'EA')`,
		itemCode, name, name+" description", category)
	require.NoError(t, err)

	_, err = tdb.Database.Exec(ctx,
		`INSERT INTO item_detail (item_code, pack_size) VALUES ($1, '1')`, itemCode)
	require.NoError(t, err)

	_, err = tdb.Database.Exec(ctx,
		`INSERT INTO stock_units (item_code, warehouse_code, bin_code, qty_on_hand)
		 VALUES ($1, $2, 'A-01', $3)`,
		itemCode, TestSiteCode, qty)
	require.NoError(t, err)
}

// SeedStaffRef inserts a reference fixture
func (tdb *TestDB) SeedStaffRef(t *testing.T, code, genID, name string) {
	t.Helper()
	_, err := tdb.Database.Exec(context.Background(),
		`INSERT INTO staff_refs (ref_code, gen_id, full_name, dept_id, title)
		 VALUES ($1, $2, $3, 'D-10', 'Clerk')`,
		code, genID, name)
	require.NoError(t, err)
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_stockroom",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Inventory: config.InventoryConfig{
			SiteCode:        TestSiteCode,
			SampleLimit:     50,
			DefaultPageSize: 50,
			MaxPageSize:     100,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
		},
		Server: config.ServerConfig{
			Host:           "localhost",
			Port:           "8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
	}
}

// CreateTestStockRecord creates a test stock record
func CreateTestStockRecord(overrides ...func(*domain.StockRecord)) *domain.StockRecord {
	record := &domain.StockRecord{
		ItemCode:      "ITM-0001",
		WarehouseCode: TestSiteCode,
		QtyAvailable:  decimal.NewFromInt(12),
		ProductName:   "Box Wrench 10mm",
		Description:   "Chrome vanadium box wrench",
		CategoryCode:  "TOOLS",
		Unit:          "EA",
	}

	for _, override := range overrides {
		override(record)
	}

	return record
}

// CreateTestStockRecords creates multiple test stock records
func CreateTestStockRecords(count int) []domain.StockRecord {
	records := make([]domain.StockRecord, count)
	for i := 0; i < count; i++ {
		record := CreateTestStockRecord(func(r *domain.StockRecord) {
			r.ItemCode = fmt.Sprintf("ITM-%04d", i+1)
			r.ProductName = fmt.Sprintf("Test Item %d", i+1)
			r.QtyAvailable = decimal.NewFromInt(int64(i + 1))
		})
		records[i] = *record
	}
	return records
}

// CreateTestStockUnit creates a test stock unit row
func CreateTestStockUnit(overrides ...func(*domain.StockUnit)) *domain.StockUnit {
	unit := &domain.StockUnit{
		ItemCode:      "ITM-0001",
		WarehouseCode: TestSiteCode,
		BinCode:       "A-01",
		QtyOnHand:     "12",
		UpdatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(unit)
	}

	return unit
}
