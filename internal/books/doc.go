// Package books is the collection engine: pure operations over a
// types.Collection (add, edit, delete, toggle, filter) and the two shelf
// views. No function here modifies its input slice; every mutating
// operation returns a freshly allocated Collection.
package books
