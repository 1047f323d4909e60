// Package ner defines the person-name recognition collaborator used as the
// last-resort fallback when heuristic name extraction finds nothing.
package ner

import "context"

// Entity is one named-entity span detected in a text prefix.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// LabelPerson marks an entity span naming a person.
const LabelPerson = "PERSON"

// Recognizer finds named entities in a text prefix. Implementations are
// consumed only through this interface so the core parser carries no hard
// dependency on any particular model.
type Recognizer interface {
	FindPersonEntities(ctx context.Context, textPrefix string) ([]Entity, error)
}
