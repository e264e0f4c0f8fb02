// Package fiado generates the human-readable codes that identify credit
// sales for later lookup and settlement.
package fiado

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxAttempts bounds the collision retry loop so a degenerate code space
// cannot stall sale creation.
const maxAttempts = 10

// ErrNoUniqueCode is returned when every generated candidate collided with
// an existing sale code.
var ErrNoUniqueCode = errors.New("could not generate a unique fiado code")

// GenerateCode produces a random 6-digit decimal code that is not already in
// use. The exists callback checks the current code space (normally a sale
// lookup); its error aborts generation immediately. After maxAttempts
// collisions the operation fails closed with ErrNoUniqueCode.
func GenerateCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrNoUniqueCode
}
