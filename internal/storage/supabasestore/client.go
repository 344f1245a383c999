// Package supabasestore implements the sqlconfig table interfaces on top of a
// hosted Supabase project through its PostgREST endpoint.
package supabasestore

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const representation = "representation"

var newestFirst = &postgrest.OrderOpts{Ascending: false}

// NewClient connects to the project at url with the given API key.
func NewClient(url, key string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("supabase.NewClient: %w", err)
	}
	return client, nil
}

// decodeRows unmarshals a PostgREST array response.
func decodeRows[T any](data []byte) ([]*T, error) {
	var rows []*T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return rows, nil
}
