// Package entity extracts a counterparty name and free-text note from a
// transaction description using an @name marker.
package entity

import "strings"

// UnknownEntity is returned when no counterparty can be extracted.
const UnknownEntity = "Unknown"

// Parse splits a transaction description into (counterparty, note).
//
// The first '@' marks the counterparty: text up to the first space after the
// '@' is the name, everything before the '@' plus everything after the name
// token forms the note. Without an '@', the counterparty is "Unknown" and the
// whole trimmed description is the note.
func Parse(description string) (string, string) {
	at := strings.Index(description, "@")
	if at < 0 {
		return UnknownEntity, strings.TrimSpace(description)
	}

	before := description[:at]
	after := description[at+1:]

	name := after
	rest := ""
	if sp := strings.Index(after, " "); sp >= 0 {
		name = after[:sp]
		rest = after[sp+1:]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownEntity
	}

	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(before); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(rest); s != "" {
		parts = append(parts, s)
	}
	return name, strings.Join(parts, " ")
}
