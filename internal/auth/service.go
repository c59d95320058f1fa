package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type credentialsStore interface {
	// GetCredentials returns the user id and bcrypt password hash for the username.
	GetCredentials(ctx context.Context, username string) (uuid.UUID, string, error)
}

type Service struct {
	redisClient *redis.Client
	credentials credentialsStore
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	credentials credentialsStore,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		credentials:    credentials,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.RandomToken,
	}
}

func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error) {
	userID, passwordHash, err := as.credentials.GetCredentials(ctx, creds.Username)
	if err != nil {
		log.Tracef("[username] failed login attempt for user %s: %s", creds.Username, err)
		return "", ErrWrongPassword
	}
	if !pkg.CheckPasswordHash(creds.Password, passwordHash) {
		log.Tracef("[password] failed login attempt for user: %s", creds.Username)
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s := session{CreatedAt: createdAt, UserID: userID}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, s.encode(), 0).Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. Returns false if the token was unknown.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return true, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := time.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// dangling set member
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		s, err := decodeSession(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if s.expired(as.ttl, now) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}

	log.Debugf("=> auth service, scan and clean done, removed %d sessions", len(toRemove))
}
