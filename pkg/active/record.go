package active

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fields is a record's decoded JSON object.
type Fields = map[string]any

/*
Record is one member of a resource's collection: a mutable field map plus
the behavior to persist itself and traverse the resource's associations.
Records are independent values; traversing an association returns new
records with no link back to the one they came from.
*/
type Record struct {
	Fields Fields

	resource *Resource
}

/*
Record builds an unsaved record of this resource type from the given
fields. Nothing touches the network until a persistence or association
method is called:

    comment := comments.Record(active.Fields{"id": 1})
    err := comment.Save() // PUT comments/1
*/
func (r *Resource) Record(fields Fields) *Record {
	if fields == nil {
		fields = make(Fields)
	}
	return &Record{Fields: fields, resource: r}
}

// Resource returns the resource type the record was built from.
func (r *Record) Resource() *Resource {
	return r.resource
}

// MarshalJSON renders the record as its bare field object.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}

// instanceURL is the record's own endpoint: the collection path plus the
// identifier field, interpolated from the record's fields.
func (r *Record) instanceURL() (string, error) {
	path, err := Interpolate(
		fmt.Sprintf("%s/:%s", r.resource.Path, r.resource.UID), r.Fields,
	)
	if err != nil {
		return "", err
	}
	return joinURL(r.resource.URL, path), nil
}

/*
Save writes the record back: one PUT of the full current field set to the
record's own endpoint. The identifier field must be present in Fields or
the endpoint cannot be built.
*/
func (r *Record) Save() error {
	endpoint, err := r.instanceURL()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(r.Fields)
	if err != nil {
		return err
	}
	_, err = r.resource.Session.request("PUT", endpoint, payload)
	return err
}

/*
Update merges fields into the record, then saves. The merge is kept even
when the save fails: the record stays mutated but unpersisted, and a
retried Save sends the merged state.
*/
func (r *Record) Update(fields Fields) error {
	for key, value := range fields {
		r.Fields[key] = value
	}
	return r.Save()
}

/*
Destroy issues a DELETE against the record's own endpoint. The in-memory
record is left as it was; what further operations on a destroyed record do
is undefined.
*/
func (r *Record) Destroy() error {
	endpoint, err := r.instanceURL()
	if err != nil {
		return err
	}
	_, err = r.resource.Session.request("DELETE", endpoint, nil)
	return err
}

/*
Association is the result of traversing a declared relationship: a tagged
variant holding a Record for the singular kinds or a scoped collection
resource for HAS_MANY. A has_one that met a 404 leaves Record nil; the
association exists but nothing is there.
*/
type Association struct {
	Kind       int
	Record     *Record
	Collection *Resource
}

/*
Association traverses the named relationship now: the singular kinds issue
a GET, has_many synthesizes the scoped child collection. Nothing is
cached; every call resolves, interpolates and fetches again.
*/
func (r *Record) Association(name string) (*Association, error) {
	rel, exists := r.resource.relations[name]
	if !exists {
		return nil, fmt.Errorf(
			"no association %q declared on %q", name, r.resource.Name,
		)
	}
	if rel.kind == HAS_MANY {
		child, err := rel.child(r)
		if err != nil {
			return nil, err
		}
		return &Association{Kind: HAS_MANY, Collection: child}, nil
	}
	record, err := rel.fetch(r)
	if err != nil {
		return nil, err
	}
	return &Association{Kind: rel.kind, Record: record}, nil
}

/*
Related fetches a singular association and unwraps the record. For an
absent has_one both results are nil. Calling it on a has_many is an error;
use Collection.
*/
func (r *Record) Related(name string) (*Record, error) {
	association, err := r.Association(name)
	if err != nil {
		return nil, err
	}
	if association.Kind == HAS_MANY {
		return nil, fmt.Errorf("association %q is a collection, use Collection", name)
	}
	return association.Record, nil
}

// Collection unwraps a has_many association: the returned resource is
// scoped to this record's interpolated relationship path and supports the
// full query surface.
func (r *Record) Collection(name string) (*Resource, error) {
	association, err := r.Association(name)
	if err != nil {
		return nil, err
	}
	if association.Kind != HAS_MANY {
		return nil, fmt.Errorf("association %q is singular, use Related", name)
	}
	return association.Collection, nil
}

// SetAssociation PUTs fields as the new value of a singular association,
// at the same interpolated endpoint a read would GET.
func (r *Record) SetAssociation(name string, fields Fields) error {
	rel, err := r.singularRelation(name)
	if err != nil {
		return err
	}
	endpoint, err := rel.endpoint(r)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	_, err = r.resource.Session.request("PUT", endpoint, payload)
	return err
}

// DeleteAssociation issues a DELETE against a singular association's
// interpolated endpoint.
func (r *Record) DeleteAssociation(name string) error {
	rel, err := r.singularRelation(name)
	if err != nil {
		return err
	}
	endpoint, err := rel.endpoint(r)
	if err != nil {
		return err
	}
	_, err = r.resource.Session.request("DELETE", endpoint, nil)
	return err
}

/*
CreateAssociation creates a record of a belongs_to target and points this
record at it: POST the fields to the target's collection, then set the
owner's foreign key field from the created record's identifier. Only the
owner's in-memory state changes; call Save to persist the new foreign key.
*/
func (r *Record) CreateAssociation(name string, fields Fields) (*Record, error) {
	rel, exists := r.resource.relations[name]
	if !exists {
		return nil, fmt.Errorf(
			"no association %q declared on %q", name, r.resource.Name,
		)
	}
	if rel.kind != BELONGS_TO {
		return nil, fmt.Errorf("association %q is not a belongs_to", name)
	}
	target, resolved := rel.resolve()
	if !resolved {
		return nil, &ResolutionError{Target: rel.target}
	}
	created, err := target.Create(fields)
	if err != nil {
		return nil, err
	}
	r.Fields[rel.fk] = created.Fields[target.UID]
	return created, nil
}

func (r *Record) singularRelation(name string) (*relation, error) {
	rel, exists := r.resource.relations[name]
	if !exists {
		return nil, fmt.Errorf(
			"no association %q declared on %q", name, r.resource.Name,
		)
	}
	if rel.kind == HAS_MANY {
		return nil, fmt.Errorf(
			"association %q is a collection and cannot be assigned", name,
		)
	}
	return rel, nil
}

// decodeFields decodes one JSON object keeping numbers as json.Number, so
// identifiers survive the round trip in their exact source form.
func decodeFields(body []byte) (Fields, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var fields Fields
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// decodeFieldsList decodes a JSON array of objects, UseNumber as above.
func decodeFieldsList(body []byte) ([]Fields, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var list []Fields
	if err := decoder.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}
