// Package domain defines domain-level errors for the export feature.
package domain

import "errors"

var (
	// ErrImageUnavailable indicates that the thumbnail image could not be downloaded.
	ErrImageUnavailable = errors.New("thumbnail image could not be fetched")

	// ErrInvalidImage indicates that the supplied bytes are not a decodable image.
	ErrInvalidImage = errors.New("image could not be decoded")
)
