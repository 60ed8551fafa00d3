package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// bills.subscriber_no declares a foreign key to users for documentation
// purposes only; the connection never enables PRAGMA foreign_keys, so the
// reference is not enforced and bills may exist without a user row.
//
// The unique index on (subscriber_no, month) backs the atomic
// insert-if-absent: concurrent identical inserts cannot produce duplicate
// rows.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    subscriber_no TEXT UNIQUE,
    password_hash TEXT
);

CREATE TABLE IF NOT EXISTS bills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    subscriber_no TEXT,
    month TEXT,
    total INTEGER,
    details TEXT,
    paid_status BOOLEAN,
    FOREIGN KEY(subscriber_no) REFERENCES users(subscriber_no)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_bills_subscriber_month ON bills(subscriber_no, month);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
