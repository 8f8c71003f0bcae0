// Package app wires the textbook RSA processor and the key-pair repository
// into the services used by the REST API.
package app
