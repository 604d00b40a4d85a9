package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

const (
	analyticsKeyPrefix = "analytics:"

	climateGlobalCacheKey = analyticsKeyPrefix + "climate:global"
	climateUnitsCacheKey  = analyticsKeyPrefix + "climate:units"
	leadershipCacheKey    = analyticsKeyPrefix + "leadership"

	analyticsKeyPattern = analyticsKeyPrefix + "*"
)

func reportCacheKey(personID string) string {
	return "report:" + personID
}

// cultureCacheKey folds the declared values into the key so different
// value sets never share an entry. Order and casing do not matter.
func cultureCacheKey(declaredValues []string) string {
	vals := make([]string, 0, len(declaredValues))
	for _, v := range declaredValues {
		v = strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(v))), " ")
		if v == "" {
			continue
		}
		vals = append(vals, v)
	}
	sort.Strings(vals)

	b, _ := json.Marshal(vals)
	sum := sha256.Sum256(b)
	return analyticsKeyPrefix + "culture:" + hex.EncodeToString(sum[:])
}
