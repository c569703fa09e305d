//go:build left

// Left retract convention: oplus(x, xi) := compose(exp(xi), x). Selected
// with -tags left; see retract_right.go for the default.
package lie

func oplusOrder[G any](compose func(a, b G) G, x, xi G) G {
	return compose(xi, x)
}

func ominusOrder[G any](compose func(a, b G) G, inverse func(G) G, y, x G) G {
	return compose(y, inverse(x))
}
