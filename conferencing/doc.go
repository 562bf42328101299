// Package conferencing reads the conferencing app credentials
// users and teams have connected, such as Zoom or Google Meet.
//
// Credential secrets are never rendered to clients.
package conferencing
