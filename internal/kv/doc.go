// Package kv provides the file and in-memory implementations of
// types.KVStore. The SQLite implementation lives in internal/sqlite.
package kv
