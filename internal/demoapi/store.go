package demoapi

import (
	"fmt"
	"net/url"
	"sync"
)

type Record = map[string]any

/*
Store is the in-memory state behind the demo API. Collections hold plain
JSON objects keyed by their "id" field; profiles live apart because they
are addressed through their owner (users/{id}/profile), not by their own
identifier.
*/
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
	profiles    map[string]Record
	nextID      map[string]int
}

func NewStore() *Store {
	store := &Store{
		collections: make(map[string][]Record),
		profiles:    make(map[string]Record),
		nextID:      make(map[string]int),
	}
	store.seed()
	return store
}

func (s *Store) seed() {
	s.collections["users"] = []Record{
		{"id": 1, "name": "Leanne Graham", "username": "Bret"},
		{"id": 2, "name": "Ervin Howell", "username": "Antonette"},
		{"id": 3, "name": "Clementine Bauch", "username": "Samantha"},
	}
	s.collections["posts"] = []Record{
		{"id": 1, "user_id": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
		{"id": 2, "user_id": 1, "title": "qui est esse", "body": "est rerum tempore"},
		{"id": 3, "user_id": 2, "title": "ea molestias quasi", "body": "et iusto sed quo"},
		{"id": 4, "user_id": 3, "title": "eum et est occaecati", "body": "ullam et saepe"},
	}
	s.collections["comments"] = []Record{
		{"id": 1, "post_id": 1, "name": "id labore", "body": "laudantium enim"},
		{"id": 2, "post_id": 1, "name": "quo vero", "body": "est natus enim"},
		{"id": 3, "post_id": 2, "name": "odio adipisci", "body": "quia molestiae"},
		{"id": 4, "post_id": 3, "name": "alias odio sit", "body": "non et atque"},
	}
	s.collections["albums"] = []Record{
		{"id": 1, "user_id": 1, "title": "quidem molestiae"},
		{"id": 2, "user_id": 2, "title": "sunt qui excepturi"},
	}
	s.collections["photos"] = []Record{
		{"id": 1, "album_id": 1, "title": "accusamus beatae", "url": "https://placehold.example/1"},
		{"id": 2, "album_id": 1, "title": "reprehenderit est", "url": "https://placehold.example/2"},
		{"id": 3, "album_id": 2, "title": "officia porro", "url": "https://placehold.example/3"},
	}
	s.collections["todos"] = []Record{
		{"id": 1, "user_id": 1, "title": "delectus aut autem", "completed": false},
		{"id": 2, "user_id": 1, "title": "quis ut nam", "completed": true},
		{"id": 3, "user_id": 2, "title": "fugiat veniam minus", "completed": false},
	}

	// Only user 1 has a profile, so the absence path stays reachable.
	s.profiles["1"] = Record{"id": 1, "bio": "multi-layered"}

	for name, records := range s.collections {
		next := 1
		for _, record := range records {
			if id, ok := record["id"].(int); ok && id >= next {
				next = id + 1
			}
		}
		s.nextID[name] = next
	}
}

func (s *Store) List(collection string, filters url.Values) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Record, 0)
	for _, record := range s.collections[collection] {
		if matches(record, filters) {
			result = append(result, record)
		}
	}
	return result
}

func matches(record Record, filters url.Values) bool {
	for key, values := range filters {
		if len(values) == 0 {
			continue
		}
		value, exists := record[key]
		if !exists || fmt.Sprint(value) != values[0] {
			return false
		}
	}
	return true
}

func (s *Store) Get(collection, id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.collections[collection] {
		if fmt.Sprint(record["id"]) == id {
			return record, true
		}
	}
	return nil, false
}

func (s *Store) Create(collection string, fields Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields == nil {
		fields = Record{}
	}
	fields["id"] = s.nextID[collection]
	s.nextID[collection]++
	s.collections[collection] = append(s.collections[collection], fields)
	return fields
}

// Replace swaps the stored object for fields, keeping the identifier the
// URL addressed it by.
func (s *Store) Replace(collection, id string, fields Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.collections[collection] {
		if fmt.Sprint(record["id"]) != id {
			continue
		}
		if fields == nil {
			fields = Record{}
		}
		fields["id"] = record["id"]
		s.collections[collection][i] = fields
		return fields, true
	}
	return nil, false
}

func (s *Store) Delete(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.collections[collection] {
		if fmt.Sprint(record["id"]) == id {
			s.collections[collection] = append(
				s.collections[collection][:i],
				s.collections[collection][i+1:]...,
			)
			return true
		}
	}
	return false
}

func (s *Store) Profile(userID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[userID]
	return profile, exists
}

func (s *Store) SetProfile(userID string, fields Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields == nil {
		fields = Record{}
	}
	s.profiles[userID] = fields
	return fields
}

func (s *Store) DeleteProfile(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.profiles[userID]
	delete(s.profiles, userID)
	return exists
}
