package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate produce una contraseña aleatoria alfanumérica de la longitud dada,
// usada para el alta de usuarios por invitación y la recuperación de acceso.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = 10
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generando contraseña: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
