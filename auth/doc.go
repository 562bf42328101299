/*
Package auth verifies the bearer tokens the identity provider issues to signed in users.

JWT

Tokens are HS256 JWTs signed with the identity provider's shared secret.
A Service verifies signature, expiry and, when configured, audience
before handing back the Claims the token carries.

Bearer

ParseBearer extracts the token from an Authorization header
and rejects anything other than exactly "Bearer <token>".

Claims

Verified Claims travel through a request's context.Context.
Use NewClaimsContext and ClaimsFromContext rather than the raw context key.
*/
package auth
