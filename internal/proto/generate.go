// Package proto holds the Portal service definition and its generated
// message and gRPC bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative portal.proto
