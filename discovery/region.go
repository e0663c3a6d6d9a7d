package discovery

// regionByLanguage maps supported UI languages to the chart region queried
// on their behalf. Anything unknown falls back to US.
var regionByLanguage = map[string]string{
	"id": "ID",
	"en": "US",
}

const defaultRegion = "US"

// ResolveRegion returns the region code for a language code.
func ResolveRegion(language string) string {
	if region, ok := regionByLanguage[language]; ok {
		return region
	}
	return defaultRegion
}
