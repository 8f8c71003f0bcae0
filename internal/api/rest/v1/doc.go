// Package v1 exposes key-pair management and the textbook RSA protocols over gin.
package v1
