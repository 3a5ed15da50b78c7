// Package repo resolves package repository locations and fetches their
// index archives.
//
// A repository is identified by a [Location], constructed only through
// [ParseLocation] so that every location handed to a [Fetcher] has already
// been validated. Fetch produces an [Archive] handle that owns any
// temporary file backing the downloaded bytes; callers release it with
// Close once the archive has been consumed.
package repo
