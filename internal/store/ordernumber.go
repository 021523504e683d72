package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber creates a human-readable order number:
// ORD-<last 4 digits of the millisecond clock>-<4 random hex chars>.
func GenerateOrderNumber(now time.Time) string {
	fragment := fmt.Sprintf("%04d", now.UnixMilli()%10000)
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", fragment, suffix)
}
