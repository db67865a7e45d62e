package usecase

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound            = errors.New("consultation request not found")
	ErrServiceSelectionNotFound = errors.New("service selection not found")
	ErrContactMessageNotFound   = errors.New("contact message not found")
)

// ValidationError is returned before any write when required fields are
// missing. Required lists every required field of the payload, Missing the
// ones that were absent or blank.
type ValidationError struct {
	Required []string
	Missing  []string
}

func (e *ValidationError) Error() string {
	if len(e.Required) == 1 {
		return "Missing required field: " + e.Required[0] + " is required"
	}
	return "Missing required fields: " + joinFields(e.Required) + " are required"
}

// StorageError wraps a failure of the document store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// requireFields checks the named values in order and reports the blank ones.
func requireFields(fields ...[2]string) error {
	var required, missing []string
	for _, f := range fields {
		required = append(required, f[0])
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Required: required, Missing: missing}
}

// joinFields renders "a, b, and c".
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
