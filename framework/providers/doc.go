// Package providers holds the service providers every Application
// registers: configuration, logging and the inspection endpoint.
//
// Each provider only describes how to build its services. Dependencies
// between them ("logger" needs "config", "inspector" needs "container" and
// "logger") are resolved by parameter name, so a host can swap any of them
// by registering its own service under the same identifier.
package providers
