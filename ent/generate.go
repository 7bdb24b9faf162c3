// Package ent holds the capture store schema. The generated client is not
// committed; run `go generate ./ent` after changing a schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
