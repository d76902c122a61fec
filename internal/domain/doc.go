// Package domain contains the value types and errors shared by the calculator
// and every layer that carries its results. It has no knowledge of transport
// or configuration.
package domain
