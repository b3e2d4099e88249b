//go:build tools
// +build tools

// Package tools fixa as dependências de ferramentas usadas via go generate.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
