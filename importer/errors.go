package importer

import "fmt"

// ResourceLoadError reports a tileset texture the loader could not provide.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("load tileset %s: %v", e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// MissingLayerError reports a configured layer name that a level lacks.
type MissingLayerError struct {
	Level string
	Layer string
}

func (e *MissingLayerError) Error() string {
	return fmt.Sprintf("level %s has no layer %q", e.Level, e.Layer)
}

// MissingResourceError reports a layer whose tileset path was never declared
// in the project's tileset definitions.
type MissingResourceError struct {
	Level string
	Layer string
	Path  string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("level %s layer %q: tileset %s is not declared", e.Level, e.Layer, e.Path)
}

// IntegrityError reports a type-grid whose length does not match its
// declared dimensions.
type IntegrityError struct {
	Level  string
	Layer  string
	Len    int
	Width  int
	Height int
}

func (e *IntegrityError) Error() string {
	msg := fmt.Sprintf("int-grid has %d cells, want 0 or %dx%d=%d", e.Len, e.Width, e.Height, e.Width*e.Height)
	if e.Layer != "" {
		msg = fmt.Sprintf("layer %q: %s", e.Layer, msg)
	}
	if e.Level != "" {
		msg = fmt.Sprintf("level %s %s", e.Level, msg)
	}
	return msg
}

// TypeMismatchError is returned by Value accessors asked for a kind the
// value does not hold.
type TypeMismatchError struct {
	Field string
	Want  Kind
	Got   Kind
	Raw   any
}

func (e *TypeMismatchError) Error() string {
	name := e.Field
	if name == "" {
		name = "value"
	}
	if e.Want == e.Got {
		return fmt.Sprintf("%s: %s payload %v (%T) is malformed", name, e.Want, e.Raw, e.Raw)
	}
	return fmt.Sprintf("%s: is %s, not %s", name, e.Got, e.Want)
}
