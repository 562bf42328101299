/*
Package supabase talks to the identity provider issuing the bearer tokens waypoint verifies.

A Client is constructed once from the project's URL and anon key:

	c, err := supabase.New(os.Getenv("NEXT_PUBLIC_SUPABASE_URL"), os.Getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY"))

and is safe for concurrent use.
*/
package supabase
