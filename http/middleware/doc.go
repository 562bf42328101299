/*
The middleware package defines what a middleware is in waypoint and a set of basic middlewares.

The available middlewares are:
- AllowMethods
- Authenticate
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

ranger assembles the default middleware chain.
Without ranger, the following can be copy-pasted:

	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RateLimit(responder, middleware.NewVisitors(5, 20), log),
		middleware.ForceHTTPS(env, "/api/v1/custom/health"),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(origin),
	}

Routes requiring a signed in user add AllowMethods and Authenticate to their own middleware stack.
*/
package middleware
