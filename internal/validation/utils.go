package validation

import "regexp"

// uuidRegex matches the standard textual UUID format.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format. Format only;
// version and variant bits are not inspected.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
