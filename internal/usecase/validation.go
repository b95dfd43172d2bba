package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

const (
	maxCouponCodeLength = 64
	maxUserNameLength   = 128
	maxTitleLength      = 200
)

// NormalizeCouponCode trims the code and checks it is printable and short enough.
func NormalizeCouponCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || utf8.RuneCountInString(code) > maxCouponCodeLength {
		return "", domainErrors.ErrInvalidCouponCode
	}
	for _, r := range code {
		if !unicode.IsPrint(r) {
			return "", domainErrors.ErrInvalidCouponCode
		}
	}
	return code, nil
}

// ValidateVoucher checks catalogue invariants before a voucher is written.
func ValidateVoucher(v model.Voucher) error {
	title := strings.TrimSpace(v.Title)
	switch {
	case title == "", utf8.RuneCountInString(title) > maxTitleLength:
		return domainErrors.ErrInvalidVoucher
	case v.PointsRequired <= 0:
		return domainErrors.ErrInvalidVoucher
	case v.Quantity < 0:
		return domainErrors.ErrInvalidVoucher
	case !v.Status.Valid():
		return domainErrors.ErrInvalidVoucher
	}
	return nil
}

// ValidateGrant checks that a grant credits a positive amount through an earning log type.
func ValidateGrant(g model.Grant) error {
	if g.Points <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	if g.UserID <= 0 || !g.LogType.Earning() {
		return domainErrors.ErrInvalidGrant
	}
	return nil
}

// NormalizeUserName trims the name and enforces length limits.
func NormalizeUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxUserNameLength {
		return "", domainErrors.ErrInvalidUser
	}
	return name, nil
}
