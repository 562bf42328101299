/*
Package settings serves a user's scheduling settings.

A user is identified by the email in the verified bearer token.
Their settings are read from the scheduling platform's database:
the user, their schedules and the availability windows of each schedule.

	GET /api/v1/custom/settings

responds with:

	{
	  "calcomUserId": 1,
	  "supabaseUserId": "8a7b7c3e-5d6f-4e21-9a0b-1c2d3e4f5a6b",
	  "email": "husserl@example.com",
	  ...
	  "schedules": [{"id": 1, "name": "Working Hours", "availability": [...]}]
	}
*/
package settings
