// Package bookshelf holds module-wide metadata.
package bookshelf

// Version is the current release of the bookshelf module.
const Version = "0.1.0"
