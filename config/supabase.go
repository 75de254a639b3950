package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	supa "github.com/supabase-community/supabase-go"
)

var SupabaseClient *supa.Client

// LoadEnv reads a .env file if one exists. Missing files are fine; the
// process environment always wins.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if Log != nil {
			Log.Debug("No .env file found, using process environment")
		}
	}
}

// InitSupabase initializes the shared Supabase client from SUPABASE_URL and
// SUPABASE_SERVICE_KEY. Both are required; there are no baked-in fallbacks.
func InitSupabase() error {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_KEY")

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}

	client, err := supa.NewClient(supabaseURL, supabaseKey, nil)
	if err != nil {
		return fmt.Errorf("initializing Supabase client: %w", err)
	}

	SupabaseClient = client
	return nil
}

// GetSupabaseClient returns the shared Supabase client. InitSupabase must
// have been called first.
func GetSupabaseClient() *supa.Client {
	return SupabaseClient
}

// GetEnvOrDefault returns the value of key, or fallback when unset or empty.
func GetEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}
