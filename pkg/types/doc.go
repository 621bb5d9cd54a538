// Package types defines the Book entity, the key-value store interface the
// persistence layer writes through, configuration, and the standard error
// values shared by every Bookshelf package.
package types
