// Package item defines the strongly-typed item descriptor and the value
// types it is built from.
package item
