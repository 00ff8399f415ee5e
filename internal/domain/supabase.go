package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient wraps the hosted Postgres backend used by the optional
// remote preference store.
type SupabaseClient interface {
	Initialize() error

	DB() *supabase.Client
}
