package validator

var tagMap = map[string]string{
	"required":        "required",
	"omitempty":       "optional",
	"e164":            "invalid_phone",
	TagCanonicalPhone: "invalid_phone",
	TagLinkTemplate:   "invalid_template",
	"hostname":        "invalid_hostname",
	"fqdn":            "invalid_hostname",
	"url":             "invalid_url",
	"max":             "too_long",
	"min":             "too_short",
	"gt":              "too_small",
	"gte":             "too_small_or_equal",
	"ltefield":        "exceeds_limit",
	"oneof":           "invalid_choice",
	"timezone":        "invalid_timezone",
}

// TagReasons returns a copy of the tag -> reason table.
func TagReasons() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, v := range tagMap {
		out[k] = v
	}
	return out
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
