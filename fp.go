package fp

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Const returns a unary function which ignores its argument and produces a.
// It is handy as a pattern transform.
func Const[S, T any](a T) func(S) T {
	return func(_ S) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
