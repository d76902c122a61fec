// Package middleware contains HTTP middleware shared by every API route.
package middleware
