/*
Package router defines how waypoint routes HTTP requests to handlers.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

A Router expects two groups of routes:
those open to any client and those behind a verified bearer token.
The UnauthedRoutes and AuthedRoutes methods ensure routes are registered in the appropriate way.
*/
package router
