package chartcfg

import "errors"

// ErrFileNotFound indicates the input path does not reference an existing file.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file content is not valid JSON.
var ErrInvalidFormat = errors.New("invalid JSON")
