// Package models contains GORM database models kept apart from the domain entities.
package models
