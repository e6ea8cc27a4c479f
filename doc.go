// Package housekit is a toolkit for loading, transforming, and summarizing
// tabular housing-sale data. The core types are the column-oriented Frame and
// the Transformer interface; subpackages provide a CSV loader, a bundled
// reference dataset, descriptive statistics, geographic bucketing, and
// terminal rendering.
package housekit
