/*
Package postgres manages our database connection. As part of the connection process, we also ensure that all migrations
have been run on the proper database. The situation where the database is simply a target for some testing has been
considered as well. In this scenario, we are dropping the public schema.

DB wraps *gorm.DB with a small set of query building and finisher methods,
mapping GORM and PostgreSQL errors onto waypoint's sentinel errors.
*/
package postgres
