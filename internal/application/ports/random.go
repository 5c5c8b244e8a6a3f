package ports

// RandomSource fuente de enteros pseudoaleatorios en [0, n).
// *rand.Rand de math/rand/v2 la satisface; en tests se inyecta una fija.
type RandomSource interface {
	IntN(n int) int
}
