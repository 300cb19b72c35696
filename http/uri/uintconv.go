package uri

import (
	"math"

	"github.com/indigo-web/reqline/http/status"
)

// parsePort is a tiny implementation of strconv.ParseUint, narrowed to uint16.
func parsePort(raw []byte) (port uint16, err error) {
	if len(raw) == 0 {
		return 0, status.ErrBadPort
	}

	var num uint32

	for _, char := range raw {
		char -= '0'
		if char > 9 {
			return 0, status.ErrBadPort
		}

		num = num*10 + uint32(char)
		if num > math.MaxUint16 {
			return 0, status.ErrPortOverflow
		}
	}

	return uint16(num), nil
}
