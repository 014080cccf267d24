package model

// Extra is a JSON-compatible side-channel for remote attributes that the
// schema does not model explicitly. Values are limited to what
// encoding/json produces (scalars, []any, map[string]any). Core logic
// must never depend on its contents.
type Extra map[string]any
