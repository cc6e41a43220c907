package utils

import (
	rndm "math/rand"
	"net/http"

	"github.com/google/uuid"

	"github.com/AurifyAE/Aurify-backend/globals"
)

var digitRunes = []rune("0123456789")

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// OrderNumber builds a human-readable order reference.
func OrderNumber() string {
	return "ORD" + GenerateRandomDigitString(8)
}

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}
