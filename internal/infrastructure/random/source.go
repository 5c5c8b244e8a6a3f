// Package random provee la fuente aleatoria de producción.
package random

import "math/rand/v2"

// Global usa el generador global de math/rand/v2, seguro para uso concurrente.
type Global struct{}

// IntN entero en [0, n). Entra en pánico si n <= 0, como rand.IntN.
func (Global) IntN(n int) int {
	return rand.IntN(n)
}
