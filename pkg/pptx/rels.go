package pptx

import "fmt"

// Relationship is one directed, keyed edge from a source part (or the
// package root) to a target part, or to an external URI.
type Relationship struct {
	rID        string
	relType    string
	target     Part
	targetRef  string
	isExternal bool
}

// RID returns the relationship's key, unique within its owning collection.
func (r *Relationship) RID() string { return r.rID }

// RelType returns the edge-type tag classifying this relationship.
func (r *Relationship) RelType() string { return r.relType }

// IsExternal reports whether the relationship points outside the package.
func (r *Relationship) IsExternal() bool { return r.isExternal }

// TargetPart returns the target part, nil for external relationships.
func (r *Relationship) TargetPart() Part { return r.target }

// TargetRef returns the external URI for external relationships, empty
// otherwise.
func (r *Relationship) TargetRef() string { return r.targetRef }

// RelationshipCollection is the ordered, keyed set of relationships owned
// by one part or by the package root. Iteration order is insertion order;
// that order is significant for round-trip fidelity on save.
type RelationshipCollection struct {
	baseURI string
	rels    []*Relationship
	byID    map[string]*Relationship
}

// NewRelationshipCollection creates an empty collection whose relationship
// targets resolve against baseURI.
func NewRelationshipCollection(baseURI string) *RelationshipCollection {
	return &RelationshipCollection{
		baseURI: baseURI,
		byID:    make(map[string]*Relationship),
	}
}

// BaseURI returns the base URI relationship targets are written relative to.
func (rc *RelationshipCollection) BaseURI() string { return rc.baseURI }

// Len returns the number of relationships in the collection.
func (rc *RelationshipCollection) Len() int { return len(rc.rels) }

// All returns the relationships in insertion order. The returned slice is
// shared; callers must not mutate it.
func (rc *RelationshipCollection) All() []*Relationship { return rc.rels }

// AddRelationship inserts a new relationship of relType to target under
// rID. It fails with a KeyConflictError if rID is already present.
func (rc *RelationshipCollection) AddRelationship(relType string, target Part, rID string) (*Relationship, error) {
	rel := &Relationship{rID: rID, relType: relType, target: target}
	if err := rc.insert(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// AddExternalRelationship inserts a new relationship of relType to the
// external URI targetRef under rID. It fails with a KeyConflictError if
// rID is already present.
func (rc *RelationshipCollection) AddExternalRelationship(relType, targetRef, rID string) (*Relationship, error) {
	rel := &Relationship{rID: rID, relType: relType, targetRef: targetRef, isExternal: true}
	if err := rc.insert(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

func (rc *RelationshipCollection) insert(rel *Relationship) error {
	if _, ok := rc.byID[rel.rID]; ok {
		return NewKeyConflictError("rId", rel.rID)
	}
	rc.byID[rel.rID] = rel
	rc.rels = append(rc.rels, rel)
	return nil
}

// GetOrAdd returns the first relationship of relType if one exists,
// otherwise inserts a new one to target under a freshly generated rId.
// Used for singleton-cardinality reltypes such as core properties, where
// the caller wants exactly one edge of that type.
func (rc *RelationshipCollection) GetOrAdd(relType string, target Part) *Relationship {
	for _, rel := range rc.rels {
		if rel.relType == relType {
			return rel
		}
	}
	rel := &Relationship{rID: rc.nextRID(), relType: relType, target: target}
	// nextRID is unused by construction, insert cannot conflict
	rc.byID[rel.rID] = rel
	rc.rels = append(rc.rels, rel)
	return rel
}

// Get returns the relationship with key rID, or a NotFoundError.
func (rc *RelationshipCollection) Get(rID string) (*Relationship, error) {
	rel, ok := rc.byID[rID]
	if !ok {
		return nil, NewNotFoundError("relationship", rID)
	}
	return rel, nil
}

// PartWithRelType returns the target part of the first relationship of
// relType, in insertion order. It fails with a NotFoundError if no
// relationship matches; callers backing optional singleton parts catch
// that and lazily create the default.
func (rc *RelationshipCollection) PartWithRelType(relType string) (Part, error) {
	for _, rel := range rc.rels {
		if rel.relType == relType && !rel.isExternal {
			return rel.target, nil
		}
	}
	return nil, NewNotFoundError("relationship with reltype", relType)
}

// PartsWithRelType returns the target parts of every relationship of
// relType, in insertion order.
func (rc *RelationshipCollection) PartsWithRelType(relType string) []Part {
	var parts []Part
	for _, rel := range rc.rels {
		if rel.relType == relType && !rel.isExternal {
			parts = append(parts, rel.target)
		}
	}
	return parts
}

// nextRID returns the lowest unused key of the form "rId<n>", n >= 1.
// Filling gaps keeps keys stable across add/save cycles.
func (rc *RelationshipCollection) nextRID() string {
	for n := 1; ; n++ {
		rID := fmt.Sprintf("rId%d", n)
		if _, ok := rc.byID[rID]; !ok {
			return rID
		}
	}
}
