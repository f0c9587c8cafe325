package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., mongodb) inside this directory.

// ErrInvalidID is returned when an identifier cannot be parsed into the
// store's internal id form. Callers treat it the same as "not found".
var ErrInvalidID = errors.New("invalid id")
