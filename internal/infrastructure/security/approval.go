package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

const subjectApproval = "approval"

// ApprovalTokenService signs the single-purpose tokens carried by the
// approve/reject links mailed to the administrator. A session token can
// never pass as an approval token: the subject claim is checked.
type ApprovalTokenService struct {
	secretKey string
	expire    time.Duration
}

func NewApprovalTokenService(secretKey string, expireH int) *ApprovalTokenService {
	return &ApprovalTokenService{
		secretKey: secretKey,
		expire:    time.Duration(expireH) * time.Hour,
	}
}

func (a *ApprovalTokenService) Generate(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   subjectApproval,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secretKey))
}

func (a *ApprovalTokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.secretKey), nil
		})
	if err != nil {
		return "", domain.ErrInvalidApprovalToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != subjectApproval || claims.UserID == "" {
		return "", domain.ErrInvalidApprovalToken
	}
	return claims.UserID, nil
}
