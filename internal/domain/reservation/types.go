package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusReserved Status = "reserved"
	StatusRedeemed Status = "redeemed"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusRedeemed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRedeemed || s == StatusExpired
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
