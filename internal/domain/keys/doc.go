// Package keys defines stored key pairs and the services and repository that manage them.
package keys
