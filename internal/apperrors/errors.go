package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so handlers can map it to a response status without
// string matching.
type Kind int

const (
	// KindUnknown is the zero value; treated as an internal failure.
	KindUnknown Kind = iota
	// KindConfigurationMissing means a required store/collection identifier or
	// credential is absent from the configuration.
	KindConfigurationMissing
	// KindStoreUnreachable means the database or one of its collections could
	// not be reached or does not exist.
	KindStoreUnreachable
	// KindInvalidInput means a comment/rating/photo payload failed validation.
	KindInvalidInput
	// KindUploadFailed means the object-storage write failed.
	KindUploadFailed
	// KindNotFound means the requested document does not exist.
	KindNotFound
	// KindConflict means a document with the same id already exists.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindStoreUnreachable:
		return "store_unreachable"
	case KindInvalidInput:
		return "invalid_input"
	case KindUploadFailed:
		return "upload_failed"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "internal"
}

// Error is a classified error carrying the configuration or store element it
// refers to (e.g. "ratings collection") when one applies.
type Error struct {
	Kind    Kind
	Element string
	Msg     string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Element != "" {
		msg = fmt.Sprintf("%s: %s", e.Element, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationMissing reports an absent configuration element by name.
func ConfigurationMissing(element string) error {
	return &Error{Kind: KindConfigurationMissing, Element: element, Msg: "required configuration is missing"}
}

// StoreUnreachable reports that a named store element could not be reached.
func StoreUnreachable(element string, err error) error {
	return &Error{Kind: KindStoreUnreachable, Element: element, Msg: "store is unreachable", Err: err}
}

// CollectionMissing reports that a configured collection does not exist in
// the database.
func CollectionMissing(element, name string) error {
	return &Error{Kind: KindStoreUnreachable, Element: element, Msg: fmt.Sprintf("collection %q does not exist", name)}
}

// InvalidInput reports a validation failure.
func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// UploadFailed reports a failed object-storage write.
func UploadFailed(err error) error {
	return &Error{Kind: KindUploadFailed, Msg: "object upload failed", Err: err}
}

// NotFound reports a missing document.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict reports a duplicate document id.
func Conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown if err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
