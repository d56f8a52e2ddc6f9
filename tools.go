//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: generates the *_mock_test.go files
//   (see the go:generate lines in the service and transport tests)
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod;
//   cmd/migrate runs the same goose provider for deployments
