// Package query derives filtered, searchable views over content item
// listings. Filtering is a pure function over the slice the store returns;
// it never touches persistence.
package query
