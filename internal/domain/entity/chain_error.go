package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("chain not found")

// NotFoundError reports a lookup for a chain ID that is not in the registry.
type NotFoundError struct {
	ChainID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("chain with id %d not found", e.ChainID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DataFormatKind classifies why the embedded dataset could not be loaded.
type DataFormatKind int

const (
	KindFile      DataFormatKind = iota // file missing, unreadable or badly named
	KindJSON                            // file is not valid chain JSON
	KindInvalid                         // decoded record violates a field rule
	KindDuplicate                       // two files declare the same chain ID
)

func (k DataFormatKind) String() string {
	switch k {
	case KindFile:
		return "reading file"
	case KindJSON:
		return "deserializing json"
	case KindInvalid:
		return "invalid record"
	case KindDuplicate:
		return "duplicate chain id"
	default:
		return fmt.Sprintf("DataFormatKind(%d)", int(k))
	}
}

// DataFormatError reports that the embedded dataset could not be turned into chain records.
type DataFormatError struct {
	Kind DataFormatKind
	File string
	Err  error
}

func (e *DataFormatError) Error() string {
	msg := e.Kind.String()
	if e.File != "" {
		msg = fmt.Sprintf("%s %s", msg, e.File)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
