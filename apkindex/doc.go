// Package apkindex parses APKINDEX archives, the gzip-compressed tar
// containers published by Alpine-style package repositories.
//
// The decompressed payload is plain text: one block per package, blocks
// separated by blank lines, each block a sequence of TAG:value lines.
// Only the P: (package name) and D: (dependencies) tags are decoded;
// every other tag is ignored so newer index revisions parse unchanged.
//
// [Scanner] exposes the records as a lazy sequential scan across every
// file inside the container, in container order. [Find] wraps a scan with
// the common single-package lookup.
package apkindex
