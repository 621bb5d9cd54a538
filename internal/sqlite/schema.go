package sqlite

// Schema DDL. The kv table holds one row per key; value is the raw
// serialized text written by the persistence adapter.
const (
	createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	upsertKV = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	selectKV = `SELECT value FROM kv WHERE key = ?;`
)

// schemaDDL lists all statements executed on open, in order.
var schemaDDL = []string{
	createKV,
}
