package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/movian/movian-api/internal/core/domain"
)

const (
	// SessionTTL applies to both user and admin session tokens.
	SessionTTL = 7 * 24 * time.Hour
	// VerificationTTL bounds how long an emailed verification link stays valid.
	VerificationTTL = 24 * time.Hour
	// ResetTTL bounds how long a password-reset link stays valid.
	ResetTTL = time.Hour

	purposeVerifyEmail   = "verify_email"
	purposeResetPassword = "reset_password"
)

// TokenService mints and validates every token kind the system uses: user
// sessions, admin sessions, email verification links, and password-reset
// links. All are HS256 JWTs signed with the one shared secret; the claim
// shapes are deliberately non-overlapping so a token of one kind can never
// pass validation as another.
type TokenService struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewTokenService(secret string, sessionTTL time.Duration) *TokenService {
	if sessionTTL <= 0 {
		sessionTTL = SessionTTL
	}
	return &TokenService{secret: []byte(secret), sessionTTL: sessionTTL}
}

// IssueUserToken mints a session token for a regular user. The payload
// carries only the user id; everything else is loaded live by the guard.
func (s *TokenService) IssueUserToken(userID string) (string, error) {
	return s.sign(jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
	})
}

// IssueAdminToken mints a session token for the configured admin identity.
// The admin:true claim is the cross-kind marker the user guard hard-rejects.
func (s *TokenService) IssueAdminToken(email, name string) (string, error) {
	return s.sign(jwt.MapClaims{
		"admin": true,
		"email": email,
		"name":  name,
		"exp":   time.Now().Add(s.sessionTTL).Unix(),
	})
}

// IssueVerificationToken mints an email verification token and returns it
// along with its jti. The pending record pins the jti so that a superseding
// registration invalidates earlier links before their expiry.
func (s *TokenService) IssueVerificationToken(email string) (token, jti string, err error) {
	jti = uuid.NewString()
	token, err = s.sign(jwt.MapClaims{
		"email":   email,
		"jti":     jti,
		"purpose": purposeVerifyEmail,
		"exp":     time.Now().Add(VerificationTTL).Unix(),
	})
	return token, jti, err
}

// IssueResetToken mints a password-reset token bound to a user id.
func (s *TokenService) IssueResetToken(userID string) (string, error) {
	return s.sign(jwt.MapClaims{
		"id":      userID,
		"jti":     uuid.NewString(),
		"purpose": purposeResetPassword,
		"exp":     time.Now().Add(ResetTTL).Unix(),
	})
}

// VerificationClaims is the decoded payload of an email verification token.
type VerificationClaims struct {
	Email   string
	TokenID string
}

// ParseVerificationToken validates a verification token and returns its
// claims. Expired tokens map to domain.ErrTokenExpired, everything else that
// fails maps to domain.ErrTokenInvalid.
func (s *TokenService) ParseVerificationToken(token string) (*VerificationClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims["purpose"] != purposeVerifyEmail {
		return nil, domain.ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	jti, _ := claims["jti"].(string)
	if email == "" || jti == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &VerificationClaims{Email: email, TokenID: jti}, nil
}

// ParseResetToken validates a password-reset token and returns the user id.
func (s *TokenService) ParseResetToken(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	if claims["purpose"] != purposeResetPassword {
		return "", domain.ErrTokenInvalid
	}
	userID, _ := claims["id"].(string)
	if userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}

func (s *TokenService) sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
