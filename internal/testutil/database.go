package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE supplier (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			code VARCHAR(32) UNIQUE,
			legal_name VARCHAR(255),
			tax_id VARCHAR(32),
			city VARCHAR(128),
			state VARCHAR(8),
			credit_limit FLOAT,
			contact_email VARCHAR(255),
			contact_phone VARCHAR(64),
			active BOOLEAN DEFAULT TRUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE customer (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			code VARCHAR(32) UNIQUE,
			legal_name VARCHAR(255),
			tax_id VARCHAR(32),
			city VARCHAR(128),
			state VARCHAR(8),
			credit_limit FLOAT,
			contact_email VARCHAR(255),
			contact_phone VARCHAR(64),
			active BOOLEAN DEFAULT TRUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE counterparty (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			type VARCHAR(16) NOT NULL,
			contact_name VARCHAR(255),
			contact_email VARCHAR(255),
			contact_phone VARCHAR(64),
			active BOOLEAN DEFAULT TRUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE purchase_order (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			po_number VARCHAR(50) NOT NULL UNIQUE,
			supplier_id VARCHAR(36) NOT NULL,
			product VARCHAR(255),
			quantity_mt FLOAT NOT NULL,
			unit_price FLOAT,
			pricing_type VARCHAR(32) NOT NULL,
			pricing_period VARCHAR(32),
			premium FLOAT DEFAULT 0,
			expected_delivery VARCHAR(10),
			location VARCHAR(128),
			status VARCHAR(16) NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(supplier_id) REFERENCES supplier(id)
		);

		CREATE TABLE sales_order (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			so_number VARCHAR(50) NOT NULL UNIQUE,
			customer_id VARCHAR(36) NOT NULL,
			product VARCHAR(255),
			quantity_mt FLOAT NOT NULL,
			unit_price FLOAT,
			pricing_type VARCHAR(32) NOT NULL,
			pricing_period VARCHAR(32),
			premium FLOAT DEFAULT 0,
			expected_delivery VARCHAR(10),
			location VARCHAR(128),
			status VARCHAR(16) NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(customer_id) REFERENCES customer(id)
		);

		CREATE TABLE warehouse_location (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(128) NOT NULL UNIQUE,
			type VARCHAR(64),
			current_stock_mt FLOAT DEFAULT 0 NOT NULL,
			capacity_mt FLOAT,
			active BOOLEAN DEFAULT TRUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE hedge (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			counterparty_id VARCHAR(36) NOT NULL,
			sales_order_id VARCHAR(36),
			quantity_mt FLOAT NOT NULL,
			contract_price FLOAT NOT NULL,
			period VARCHAR(20) NOT NULL,
			instrument VARCHAR(128),
			maturity_date VARCHAR(10),
			status VARCHAR(16) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(counterparty_id) REFERENCES counterparty(id),
			FOREIGN KEY(sales_order_id) REFERENCES sales_order(id)
		);

		CREATE TABLE market_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			source VARCHAR(64) NOT NULL,
			symbol VARCHAR(64) NOT NULL,
			contract_month VARCHAR(16),
			price FLOAT NOT NULL,
			currency VARCHAR(8) DEFAULT 'USD' NOT NULL,
			as_of DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_market_price UNIQUE (source, symbol, as_of)
		);

		CREATE TABLE mtm_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			as_of_date VARCHAR(10) NOT NULL,
			hedge_id VARCHAR(36) NOT NULL,
			market_price FLOAT NOT NULL,
			mtm_value FLOAT NOT NULL,
			computed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(hedge_id) REFERENCES hedge(id) ON DELETE CASCADE
		);

		CREATE TABLE rfq_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			rfq_number VARCHAR(50) NOT NULL UNIQUE,
			company VARCHAR(64) NOT NULL,
			message_text TEXT NOT NULL,
			channel VARCHAR(16) NOT NULL,
			status VARCHAR(16) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE system_setting (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			"key" VARCHAR(64) NOT NULL UNIQUE,
			value VARCHAR(1024) NOT NULL,
			updated_at DATETIME
		);
	`

	_, err := db.Exec(schema)
	return err
}
