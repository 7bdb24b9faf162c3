// Package proto holds the wire contracts between the orchestrator, the
// execution agents, and the LLM service. The Go bindings are generated into
// this directory and are not committed; run `go generate ./proto` after
// changing a .proto file.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
