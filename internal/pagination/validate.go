package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
)

// DefaultPageSize is the page size used when a caller has no better choice.
const DefaultPageSize = 20

// ErrInvalidPageSize is returned when a caller configures a page size below one. It is
// a programming error, not a client error.
var ErrInvalidPageSize = errors.New("page size must be positive")

var naturalNumber = regexp.MustCompile(`^[0-9]+$`)

// PageWindow is a validated offset/limit pair.
type PageWindow struct {
	Offset int
	Limit  int
}

// QueryString renders the window the way a client requests it.
func (w PageWindow) QueryString() string {
	return fmt.Sprintf("offset=%d&limit=%d", w.Offset, w.Limit)
}

// Validate checks raw offset and limit arguments and returns them as integers.
//
// Each argument must be an integer, or a string made only of ASCII digits, and must not
// be negative. With limitToPageSize set, both must be multiples of pageSize. The offset
// must always be a multiple of the limit. The returned values are never adjusted, so
// they reproduce the query the client sent.
func Validate(offsetRaw, limitRaw any, pageSize int, limitToPageSize bool) (PageWindow, error) {
	if limitToPageSize && pageSize <= 0 {
		return PageWindow{}, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	var parsed [2]int
	for i, raw := range [2]any{offsetRaw, limitRaw} {
		n, err := parseArg(raw)
		if err != nil {
			return PageWindow{}, err
		}
		if limitToPageSize && n%pageSize != 0 {
			return PageWindow{}, newQueryArgumentError(
				fmt.Sprintf("Pagination args must be a multiple of %d", pageSize))
		}
		parsed[i] = n
	}

	offset, limit := parsed[0], parsed[1]
	if limit == 0 {
		return PageWindow{}, newQueryArgumentError("Limit must be greater than zero.")
	}
	if offset%limit != 0 {
		return PageWindow{}, newQueryArgumentError("Offset must be a multiple of limit.")
	}

	return PageWindow{Offset: offset, Limit: limit}, nil
}

// FromQuery reads offset and limit from query parameters and validates them. A missing
// or blank offset defaults to 0 and a missing or blank limit defaults to pageSize.
func FromQuery(query url.Values, pageSize int, limitToPageSize bool) (PageWindow, error) {
	var offset, limit any = 0, pageSize
	if v := query.Get("offset"); v != "" {
		offset = v
	}
	if v := query.Get("limit"); v != "" {
		limit = v
	}
	return Validate(offset, limit, pageSize, limitToPageSize)
}

func parseArg(raw any) (int, error) {
	notNatural := newQueryArgumentError("Pagination arguments must be natural numbers")

	var n int64
	switch v := raw.(type) {
	case string:
		if !naturalNumber.MatchString(v) {
			return 0, notNatural
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, notNatural
		}
		return parsed, nil
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, notNatural
		}
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, notNatural
		}
		n = int64(v)
	default:
		return 0, notNatural
	}

	if n < 0 || n > math.MaxInt {
		return 0, notNatural
	}
	return int(n), nil
}
