/*
Package req provides ergonomics for handling an HTTP request.

Package req parses payloads encoded in query parameters into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct with "schema" tags.
Second, validating the payload's data meets requirements with "validate" tags.

	type listParams struct {
		App string `schema:"app" validate:"omitempty,max=64"`
	}

Issues with the payload are translated into ValidationErrors,
which unwrap to waypoint.ErrNotValid.
*/
package req
