package store

import (
	"context"
	"database/sql"
	"fmt"
)

// MySQLBackend stores blobs in a two-column MySQL table
// (id BIGINT UNSIGNED PRIMARY KEY, data MEDIUMBLOB). MySQL's durability
// guarantees satisfy the store contract: a Put has been flushed by the
// time ExecContext returns.
type MySQLBackend struct {
	db    *sql.DB
	table string
}

// NewMySQLBackend binds a backend to the named record table. The table name
// comes from a compile-time constant, never from user input.
func NewMySQLBackend(db *sql.DB, table string) *MySQLBackend {
	return &MySQLBackend{db: db, table: table}
}

// Get implements Backend.
func (b *MySQLBackend) Get(ctx context.Context, id uint64) ([]byte, bool, error) {
	q := fmt.Sprintf("SELECT data FROM %s WHERE id = ?", b.table)
	var data []byte
	err := b.db.QueryRowContext(ctx, q, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put implements Backend with an upsert; last write wins.
func (b *MySQLBackend) Put(ctx context.Context, id uint64, data []byte) error {
	q := fmt.Sprintf(
		"INSERT INTO %s (id, data) VALUES (?, ?) ON DUPLICATE KEY UPDATE data = VALUES(data)",
		b.table)
	_, err := b.db.ExecContext(ctx, q, id, data)
	return err
}

// Scan implements Backend, yielding rows in id order.
func (b *MySQLBackend) Scan(ctx context.Context, fn func(id uint64, data []byte) error) error {
	q := fmt.Sprintf("SELECT id, data FROM %s ORDER BY id", b.table)
	rows, err := b.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id uint64
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return err
		}
		if err := fn(id, data); err != nil {
			return err
		}
	}
	return rows.Err()
}

// MySQLCell keeps the identity counter in the single-row id_counter table.
type MySQLCell struct {
	db *sql.DB
}

// NewMySQLCell returns a cell backed by the id_counter table. The row is
// seeded by database.EnsureSchema.
func NewMySQLCell(db *sql.DB) *MySQLCell { return &MySQLCell{db: db} }

// Get implements Cell.
func (c *MySQLCell) Get(ctx context.Context) (uint64, error) {
	var v uint64
	err := c.db.QueryRowContext(ctx, "SELECT value FROM id_counter WHERE id = 1").Scan(&v)
	return v, err
}

// Set implements Cell.
func (c *MySQLCell) Set(ctx context.Context, v uint64) error {
	_, err := c.db.ExecContext(ctx, "UPDATE id_counter SET value = ? WHERE id = 1", v)
	return err
}
