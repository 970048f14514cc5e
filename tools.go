//go:build tools

package tools

// mockery is pinned here so that `go run github.com/vektra/mockery/v2`
// generates pkg/cmditf/mocks with the version in go.mod.
import (
	_ "github.com/vektra/mockery/v2"
)
