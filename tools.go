//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through the go:generate directive of the repository
// interfaces; importing it here keeps it tracked in go.mod / go.sum so that
// `go generate ./...` works on a fresh checkout.
package address_book

import (
	_ "go.uber.org/mock/mockgen"
)
