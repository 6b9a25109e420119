// Package storage provides the SQLite implementation of the Store interface.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/zaiko/internal/models"
)

// Relative tolerance applied when filtering on electrical values: a query
// for "10k" matches anything within 5% of 10000Ω.
const valueTolerance = 0.05

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS components (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		manufacturer TEXT,
		part_number TEXT,
		package TEXT,
		location TEXT,
		quantity INTEGER NOT NULL DEFAULT 0,
		min_quantity INTEGER NOT NULL DEFAULT 0,
		unit_price REAL NOT NULL DEFAULT 0,
		resistance REAL,
		capacitance REAL,
		voltage REAL,
		inductance REAL,
		current_rating REAL,
		frequency REAL,
		last_used_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_components_category ON components(category);
	CREATE INDEX IF NOT EXISTS idx_components_location ON components(location);
	CREATE INDEX IF NOT EXISTS idx_components_manufacturer ON components(manufacturer);
	`
	_, err := db.Exec(schema)
	return err
}

const componentColumns = `id, name, description, category, manufacturer, part_number,
	package, location, quantity, min_quantity, unit_price,
	resistance, capacitance, voltage, inductance, current_rating, frequency,
	last_used_at, created_at, updated_at`

// CreateComponent inserts a component.
func (s *SQLiteStore) CreateComponent(ctx context.Context, c *models.Component) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO components (`+componentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Category, c.Manufacturer, c.PartNumber,
		c.Package, c.Location, c.Quantity, c.MinQuantity, c.UnitPrice,
		c.Resistance, c.Capacitance, c.Voltage, c.Inductance, c.Current, c.Frequency,
		c.LastUsedAt, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetComponent returns a component by ID.
func (s *SQLiteStore) GetComponent(ctx context.Context, id string) (*models.Component, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+componentColumns+` FROM components WHERE id = ?`, id)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateComponent updates an existing component.
func (s *SQLiteStore) UpdateComponent(ctx context.Context, c *models.Component) error {
	c.UpdatedAt = time.Now()

	result, err := s.db.ExecContext(ctx,
		`UPDATE components SET
			name = ?, description = ?, category = ?, manufacturer = ?,
			part_number = ?, package = ?, location = ?, quantity = ?,
			min_quantity = ?, unit_price = ?, resistance = ?, capacitance = ?,
			voltage = ?, inductance = ?, current_rating = ?, frequency = ?,
			last_used_at = ?, updated_at = ?
		 WHERE id = ?`,
		c.Name, c.Description, c.Category, c.Manufacturer,
		c.PartNumber, c.Package, c.Location, c.Quantity,
		c.MinQuantity, c.UnitPrice, c.Resistance, c.Capacitance,
		c.Voltage, c.Inductance, c.Current, c.Frequency,
		c.LastUsedAt, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("component not found: %s", c.ID)
	}
	return nil
}

// DeleteComponent removes a component by ID.
func (s *SQLiteStore) DeleteComponent(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM components WHERE id = ?`, id)
	return err
}

// ListComponents returns components ordered by name with offset and limit.
func (s *SQLiteStore) ListComponents(ctx context.Context, offset, limit int) ([]*models.Component, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+componentColumns+` FROM components ORDER BY name LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComponents(rows)
}

// GetComponentsByIDs returns the components with the given IDs. Missing IDs
// are skipped; the result preserves the input order.
func (s *SQLiteStore) GetComponentsByIDs(ctx context.Context, ids []string) ([]*models.Component, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+componentColumns+` FROM components WHERE id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found, err := scanComponents(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Component, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	ordered := make([]*models.Component, 0, len(found))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// valueColumns maps electrical filter keys to their table columns. The
// current column is named current_rating because CURRENT is an SQL keyword.
var valueColumns = map[string]string{
	"resistance":  "resistance",
	"capacitance": "capacitance",
	"voltage":     "voltage",
	"inductance":  "inductance",
	"current":     "current_rating",
	"frequency":   "frequency",
}

// filterOrder fixes WHERE clause order so the same filter map always builds
// the same SQL.
var filterOrder = []string{
	"category", "stock_status", "location", "package", "manufacturer",
	"resistance", "capacitance", "voltage", "inductance", "current", "frequency",
	"min_price", "max_price", "exact_price", "ids",
}

// SearchComponents executes a structured filtered query and returns the page
// plus the unpaged match count. Unknown filter keys are ignored.
func (s *SQLiteStore) SearchComponents(ctx context.Context, filters map[string]interface{}, limit, offset int) ([]*models.Component, int, error) {
	where, args, err := buildWhere(filters)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM components`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+componentColumns+` FROM components`+where+` ORDER BY name LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	components, err := scanComponents(rows)
	if err != nil {
		return nil, 0, err
	}
	return components, total, nil
}

func buildWhere(filters map[string]interface{}) (string, []interface{}, error) {
	var conds []string
	var args []interface{}

	for _, key := range filterOrder {
		v, ok := filters[key]
		if !ok {
			continue
		}
		switch key {
		case "category":
			conds = append(conds, "category = ? COLLATE NOCASE")
			args = append(args, fmt.Sprint(v))
		case "stock_status":
			cond, err := stockCondition(fmt.Sprint(v))
			if err != nil {
				return "", nil, err
			}
			conds = append(conds, cond)
		case "location":
			conds = append(conds, "location LIKE ? COLLATE NOCASE")
			args = append(args, "%"+fmt.Sprint(v)+"%")
		case "package":
			conds = append(conds, "package = ? COLLATE NOCASE")
			args = append(args, fmt.Sprint(v))
		case "manufacturer":
			conds = append(conds, "manufacturer = ? COLLATE NOCASE")
			args = append(args, fmt.Sprint(v))
		case "resistance", "capacitance", "voltage", "inductance", "current", "frequency":
			mag, err := toFloat(v)
			if err != nil {
				return "", nil, fmt.Errorf("filter %s: %w", key, err)
			}
			col := valueColumns[key]
			lo, hi := mag*(1-valueTolerance), mag*(1+valueTolerance)
			conds = append(conds, col+" BETWEEN ? AND ?")
			args = append(args, lo, hi)
		case "min_price":
			mag, err := toFloat(v)
			if err != nil {
				return "", nil, fmt.Errorf("filter min_price: %w", err)
			}
			conds = append(conds, "unit_price >= ?")
			args = append(args, mag)
		case "max_price":
			mag, err := toFloat(v)
			if err != nil {
				return "", nil, fmt.Errorf("filter max_price: %w", err)
			}
			conds = append(conds, "unit_price <= ?")
			args = append(args, mag)
		case "exact_price":
			mag, err := toFloat(v)
			if err != nil {
				return "", nil, fmt.Errorf("filter exact_price: %w", err)
			}
			conds = append(conds, "unit_price = ?")
			args = append(args, mag)
		case "ids":
			ids, err := toStrings(v)
			if err != nil {
				return "", nil, fmt.Errorf("filter ids: %w", err)
			}
			if len(ids) == 0 {
				conds = append(conds, "1 = 0")
				continue
			}
			placeholders := strings.Repeat("?,", len(ids)-1) + "?"
			conds = append(conds, "id IN ("+placeholders+")")
			for _, id := range ids {
				args = append(args, id)
			}
		}
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func stockCondition(status string) (string, error) {
	switch status {
	case models.StockAvailable:
		return "(quantity > 0 AND quantity >= min_quantity)", nil
	case models.StockLow:
		return "(quantity > 0 AND quantity < min_quantity)", nil
	case models.StockOut:
		return "quantity <= 0", nil
	case "reorder":
		return "quantity <= min_quantity", nil
	case "unused":
		return "last_used_at IS NULL", nil
	default:
		return "", fmt.Errorf("unknown stock status %q", status)
	}
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func toStrings(v interface{}) ([]string, error) {
	switch ids := v.(type) {
	case []string:
		return ids, nil
	case []interface{}:
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			s, ok := id.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", id)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", v)
	}
}

// ListCategories returns the distinct categories in use, sorted.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]string, error) {
	return s.listDistinct(ctx, "category")
}

// ListLocations returns the distinct non-empty locations in use, sorted.
func (s *SQLiteStore) ListLocations(ctx context.Context) ([]string, error) {
	return s.listDistinct(ctx, "location")
}

func (s *SQLiteStore) listDistinct(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT `+column+` FROM components
		 WHERE `+column+` IS NOT NULL AND `+column+` != ''
		 ORDER BY `+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// CountComponents returns the total number of components.
func (s *SQLiteStore) CountComponents(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM components`).Scan(&count)
	return count, err
}

// CountLowStock returns the number of components at or below their minimum.
func (s *SQLiteStore) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM components WHERE quantity <= min_quantity`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComponent(row rowScanner) (*models.Component, error) {
	var c models.Component
	var description, manufacturer, partNumber, pkg, location sql.NullString
	var lastUsed sql.NullTime

	err := row.Scan(
		&c.ID, &c.Name, &description, &c.Category, &manufacturer, &partNumber,
		&pkg, &location, &c.Quantity, &c.MinQuantity, &c.UnitPrice,
		&c.Resistance, &c.Capacitance, &c.Voltage, &c.Inductance, &c.Current, &c.Frequency,
		&lastUsed, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Description = description.String
	c.Manufacturer = manufacturer.String
	c.PartNumber = partNumber.String
	c.Package = pkg.String
	c.Location = location.String
	if lastUsed.Valid {
		t := lastUsed.Time
		c.LastUsedAt = &t
	}
	return &c, nil
}

func scanComponents(rows *sql.Rows) ([]*models.Component, error) {
	var components []*models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}
