package active

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// collectionURL is the absolute endpoint of the resource's collection,
// with the conditions appended as query parameters. url.Values keeps the
// parameter order deterministic.
func (r *Resource) collectionURL(conditions Fields) string {
	endpoint := joinURL(r.URL, r.Path)
	if len(conditions) == 0 {
		return endpoint
	}
	values := make(url.Values, len(conditions))
	for key, value := range conditions {
		values.Set(key, formatValue(value))
	}
	return endpoint + "?" + values.Encode()
}

/*
All fetches every record of the collection. Optional filters become query
parameters:

    posts.All()                            // GET posts
    posts.All(active.Fields{"user_id": 1}) // GET posts?user_id=1
*/
func (r *Resource) All(filters ...Fields) ([]*Record, error) {
	return r.Where(mergeFilters(filters))
}

/*
Where fetches the records matching conditions. The conditions travel as
query parameters and the server does the filtering; nothing is re-checked
client-side.
*/
func (r *Resource) Where(conditions Fields) ([]*Record, error) {
	body, err := r.Session.request("GET", r.collectionURL(conditions), nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeFieldsList(body)
	if err != nil {
		return nil, err
	}
	records := make([]*Record, 0, len(list))
	for _, fields := range list {
		records = append(records, r.Record(fields))
	}
	return records, nil
}

/*
Create POSTs fields to the collection endpoint and returns the record the
server answered with, server-assigned identifier included.
*/
func (r *Resource) Create(fields Fields) (*Record, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	body, err := r.Session.request("POST", r.collectionURL(nil), payload)
	if err != nil {
		return nil, err
	}
	created, err := decodeFields(body)
	if err != nil {
		return nil, err
	}
	return r.Record(created), nil
}

/*
Find fetches one record by identifier. Unlike has_one traversal, a 404
here is an error like any other non-2xx status.
*/
func (r *Resource) Find(id any) (*Record, error) {
	endpoint := joinURL(r.URL, fmt.Sprintf("%s/%s", r.Path, formatValue(id)))
	body, err := r.Session.request("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	fields, err := decodeFields(body)
	if err != nil {
		return nil, err
	}
	return r.Record(fields), nil
}

// FindBy returns the first record matching conditions, nil when nothing
// does.
func (r *Resource) FindBy(conditions Fields) (*Record, error) {
	records, err := r.Where(conditions)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

/*
At returns the n-th (zero-based) record of All, nil when the collection is
shorter than that. First through Fifth name the usual offsets.
*/
func (r *Resource) At(n int, filters ...Fields) (*Record, error) {
	records, err := r.All(filters...)
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= len(records) {
		return nil, nil
	}
	return records[n], nil
}

func (r *Resource) First(filters ...Fields) (*Record, error) {
	return r.At(0, filters...)
}

func (r *Resource) Second(filters ...Fields) (*Record, error) {
	return r.At(1, filters...)
}

func (r *Resource) Third(filters ...Fields) (*Record, error) {
	return r.At(2, filters...)
}

func (r *Resource) Fourth(filters ...Fields) (*Record, error) {
	return r.At(3, filters...)
}

func (r *Resource) Fifth(filters ...Fields) (*Record, error) {
	return r.At(4, filters...)
}

// FortyTwo returns the answer.
func (r *Resource) FortyTwo(filters ...Fields) (*Record, error) {
	return r.At(41, filters...)
}

func mergeFilters(filters []Fields) Fields {
	if len(filters) == 0 {
		return nil
	}
	merged := make(Fields)
	for _, filter := range filters {
		for key, value := range filter {
			merged[key] = value
		}
	}
	return merged
}
