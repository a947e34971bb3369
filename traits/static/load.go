package static

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadPackage type-checks the single package matching pattern and
// returns its type information, ready for classification.
func LoadPackage(pattern string) (*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("loading %q: %w", pattern, pkgs[0].Errors[0])
	}

	return pkgs[0].Types, nil
}

// LookupType returns the type named name declared at package scope in
// pkg, or nil if there is no such type.
func LookupType(pkg *types.Package, name string) types.Type {
	if pkg == nil {
		return nil
	}
	if tn, ok := pkg.Scope().Lookup(name).(*types.TypeName); ok {
		return tn.Type()
	}
	return nil
}
