// Package synchronizer keeps the gallery block of a page in step with the
// images on disk.
//
// It enumerates the gallery directory, renders one slide per image, splices
// the result between the gallery markers and writes the page back. A check
// mode does the same work in memory and reports drift instead of writing.
package synchronizer
