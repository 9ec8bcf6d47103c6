// Package tokens groups and orders the raw SCSS tables into the shapes the
// documentation pages present: palette buckets, semantic groups, the primary
// scale and sorted size scales. Load builds a Catalog holding all of them.
package tokens
