package pptx

// Unmarshal rebuilds the live part/relationship graph of pkg from the flat
// records in pr. It is a single pass per load:
//
//  1. one part per stored record, constructed through the factory and
//     keyed by partname so a part referenced by several relationships is
//     built exactly once (a duplicate partname is a fatal load error)
//  2. every relationship record wired onto its source's collection, with
//     unknown internal targets failing the load as dangling references
//  3. AfterUnmarshal invoked on every part, then on the package, once the
//     whole graph exists; hooks may rely on step 2's graph and nothing
//     more
func Unmarshal(pr *PackageReader, pkg *Package, factory *PartFactory) error {
	parts, err := unmarshalParts(pr, factory)
	if err != nil {
		return err
	}
	if err := unmarshalRelationships(pr, pkg, parts); err != nil {
		return err
	}
	for _, part := range parts {
		if err := part.AfterUnmarshal(); err != nil {
			return err
		}
	}
	return pkg.AfterUnmarshal()
}

func unmarshalParts(pr *PackageReader, factory *PartFactory) (map[PackURI]Part, error) {
	parts := make(map[PackURI]Part, len(pr.Parts))
	for _, stored := range pr.Parts {
		if _, ok := parts[stored.PartName]; ok {
			return nil, NewKeyConflictError("partname", string(stored.PartName))
		}
		part, err := factory.Load(stored.PartName, stored.ContentType, stored.Blob)
		if err != nil {
			return nil, err
		}
		parts[stored.PartName] = part
	}
	return parts, nil
}

func unmarshalRelationships(pr *PackageReader, pkg *Package, parts map[PackURI]Part) error {
	for _, record := range pr.Rels {
		rels, err := sourceRels(pkg, parts, record)
		if err != nil {
			return err
		}
		if record.IsExternal {
			if _, err := rels.AddExternalRelationship(record.RelType, record.Target, record.RID); err != nil {
				return err
			}
			continue
		}
		target, ok := parts[PackURI(record.Target)]
		if !ok {
			return NewDanglingReferenceError(
				string(record.SourcePartName), record.RID, record.Target,
			)
		}
		if _, err := rels.AddRelationship(record.RelType, target, record.RID); err != nil {
			return err
		}
	}
	return nil
}

// sourceRels returns the collection the record belongs on: the package's
// own collection for package-root records, the source part's otherwise.
func sourceRels(pkg *Package, parts map[PackURI]Part, record RelationshipRecord) (*RelationshipCollection, error) {
	if record.SourcePartName == PackageURI {
		return pkg.Rels(), nil
	}
	source, ok := parts[record.SourcePartName]
	if !ok {
		return nil, NewDanglingReferenceError(
			string(record.SourcePartName), record.RID, record.Target,
		)
	}
	return source.Rels(), nil
}
