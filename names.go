package inflowave

// Version family names. Each family shares a keyword/function vocabulary and
// a feature set; point releases within a family behave identically for
// completion purposes.
const (
	Family1x = "1.x"
	Family2x = "2.x"
	Family3x = "3.x"
)

// DefaultFamily is the baseline family used when a version key is unknown.
const DefaultFamily = Family1x

// Query file extensions recognised by workspace scans.
var QueryFileExtensions = []string{"influxql", "iql"}

// FamilyForVersion maps a raw version string (e.g. "1.8.10", "2.7", "v3.0")
// to its family name. Unrecognised versions map to DefaultFamily.
func FamilyForVersion(version string) string {
	v := version
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		v = v[1:]
	}

	switch {
	case v == Family1x || v == Family2x || v == Family3x:
		return v
	case len(v) >= 2 && v[1] == '.':
		switch v[0] {
		case '1':
			return Family1x
		case '2':
			return Family2x
		case '3':
			return Family3x
		}
	}

	return DefaultFamily
}
