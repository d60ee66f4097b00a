package nix

import "go.iioon.dev/iioon/internal/core/domain"

// GenerateShellExprForTest exports the private expression generator.
func GenerateShellExprForTest(desc domain.ShellDescriptor) (string, error) {
	return generateShellExpr(desc)
}

// MergeEnvForTest exports the private env merge helper.
var MergeEnvForTest = mergeEnv
