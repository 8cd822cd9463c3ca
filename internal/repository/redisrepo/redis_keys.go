package redisrepo

import "fmt"

const (
	REVOKED_TOKEN_KEY = "revoked-token:%s" // <token>
)

func RevokedTokenKey(token string) string {
	return fmt.Sprintf(REVOKED_TOKEN_KEY, token)
}
