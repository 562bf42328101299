/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

Every response resp writes is JSON.
Handlers hand Json the data to encode along with Fn options
setting the status code, headers, a client-facing message
or an error to log.
*/
package resp
