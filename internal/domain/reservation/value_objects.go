package reservation

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode       = errors.New("invalid redemption code format")
	ErrInvalidCodeLength = errors.New("redemption code length must be between 8 and 16")
)

const (
	MinCodeLength = 8
	MaxCodeLength = 16

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{8,16}$`)

// Code is the short secret a buyer presents at pickup.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate() (Code, error)
}

type RandomCodeGenerator struct {
	length int
}

func NewRandomCodeGenerator(length int) (*RandomCodeGenerator, error) {
	if length < MinCodeLength || length > MaxCodeLength {
		return nil, ErrInvalidCodeLength
	}
	return &RandomCodeGenerator{length: length}, nil
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return Code(""), err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return Code(b.String()), nil
}
