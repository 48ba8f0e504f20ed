package ticket

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTicket = errors.New("invalid ticket")
	ErrExpiredTicket = errors.New("ticket expired")
)

// Claims is the payload encoded into a reservation QR code.
type Claims struct {
	ReservationID uuid.UUID `json:"rid"`
	Code          string    `json:"code"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	issuer    string
}

func NewService(secretKey, issuer string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Issue signs a ticket valid until the reservation expires.
func (s *Service) Issue(reservationID uuid.UUID, code string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		ReservationID: reservationID,
		Code:          code,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Parse verifies the signature and returns the claims. An expired ticket still
// returns its claims alongside ErrExpiredTicket so callers can report expiry
// for the right reservation.
func (s *Service) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidTicket
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && claims.ReservationID != uuid.Nil {
			return claims, ErrExpiredTicket
		}
		return nil, ErrInvalidTicket
	}

	if !token.Valid {
		return nil, ErrInvalidTicket
	}

	return claims, nil
}
