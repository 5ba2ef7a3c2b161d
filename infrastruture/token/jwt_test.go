package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJwtService(t *testing.T) {
	svc := NewJwtService("test-secret-key", "maze-solver")

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			"username": "wanderer",
		}

		tok, err := svc.Generate(claims, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)

		decoded, err := svc.Decode(tok)
		assert.NoError(t, err)
		assert.Equal(t, "wanderer", decoded["username"])
		assert.Equal(t, "maze-solver", decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		tok, err := svc.Generate(map[string]interface{}{"username": "late"}, -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(tok)
		assert.Error(t, err)
	})

	t.Run("Decode token signed with another key", func(t *testing.T) {
		other := NewJwtService("different-secret", "maze-solver")
		tok, err := other.Generate(map[string]interface{}{"username": "intruder"}, 5*time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(tok)
		assert.Error(t, err)
	})
}
