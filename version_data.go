package inflowave

// Static vocabulary tables for the three supported version families.
// Pure data: generators and hover read these, nothing mutates them.

// influxKeywords is the shared InfluxQL keyword vocabulary.
var influxKeywords = map[string]string{
	// Statement verbs
	"SELECT":  "Query data from one or more measurements",
	"SHOW":    "List schema objects (databases, measurements, keys, ...)",
	"CREATE":  "Create a database, retention policy or other object",
	"DROP":    "Delete a database, measurement, series or other object",
	"DELETE":  "Delete series data from a measurement",
	"EXPLAIN": "Show the query plan for a SELECT statement",
	"ALTER":   "Modify a retention policy",
	"GRANT":   "Grant privileges to a user",
	"REVOKE":  "Revoke privileges from a user",
	"INSERT":  "Write a point using line protocol",

	// Clauses
	"FROM":   "Specify the measurement(s) to query",
	"WHERE":  "Filter points by field values, tag values or time",
	"GROUP":  "Start of GROUP BY clause",
	"BY":     "Used with GROUP BY and ORDER BY",
	"ORDER":  "Start of ORDER BY clause",
	"LIMIT":  "Limit the number of points returned",
	"OFFSET": "Skip a number of points",
	"SLIMIT": "Limit the number of series returned",
	"INTO":   "Write query results into a measurement",
	"FILL":   "Specify the value reported for intervals with no data",
	"TZ":     "Apply a time zone to result timestamps",

	// Operators and predicates
	"AND": "Logical AND",
	"OR":  "Logical OR",
	"NOT": "Logical NOT",
	"IN":  "Check membership in a list (subqueries)",

	// Modifiers
	"AS":       "Alias a field or measurement",
	"ASC":      "Ascending sort order",
	"DESC":     "Descending sort order",
	"DISTINCT": "Return only distinct field values",
	"ALL":      "All privileges / include all",
	"ON":       "Specify the database a statement applies to",
	"WITH":     "Attach options (KEY, DURATION, PASSWORD, ...)",
	"KEY":      "Tag key selector in SHOW statements",
	"KEYS":     "Tag/field key selector in SHOW statements",
	"VALUES":   "Tag value selector in SHOW TAG VALUES",

	// Schema object nouns
	"DATABASE":     "A named container for time series data",
	"DATABASES":    "All databases",
	"MEASUREMENT":  "A table of points sharing a name",
	"MEASUREMENTS": "All measurements in a database",
	"SERIES":       "A unique combination of measurement and tag set",
	"RETENTION":    "Retention policy keyword",
	"POLICY":       "Retention policy keyword",
	"POLICIES":     "Retention policy keyword (plural)",
	"CONTINUOUS":   "Continuous query keyword",
	"QUERY":        "Query object keyword",
	"QUERIES":      "Running or continuous queries",
	"USER":         "A database user",
	"USERS":        "All database users",
	"PASSWORD":     "User password option",
	"PRIVILEGES":   "User privileges",
	"DURATION":     "Retention policy duration option",
	"REPLICATION":  "Retention policy replication factor",
	"SHARD":        "A horizontal partition of stored data",
	"SHARDS":       "All shards",
	"DEFAULT":      "Mark a retention policy as the default",
	"TIME":         "The timestamp column",
	"BEGIN":        "Start of a continuous query body",
	"END":          "End of a continuous query body",
}

// influxFunctions is the shared InfluxQL function vocabulary.
var influxFunctions = map[string]string{
	// Aggregations
	"count":    "Returns the number of non-null field values",
	"sum":      "Returns the sum of field values",
	"mean":     "Returns the arithmetic average of field values",
	"median":   "Returns the middle value from a sorted list of field values",
	"mode":     "Returns the most frequent value in a list of field values",
	"spread":   "Returns the difference between the minimum and maximum field values",
	"stddev":   "Returns the standard deviation of field values",
	"distinct": "Returns the list of unique field values",
	"integral": "Returns the area under the curve for field values",

	// Selectors
	"first":      "Returns the field value with the oldest timestamp",
	"last":       "Returns the field value with the most recent timestamp",
	"min":        "Returns the lowest field value",
	"max":        "Returns the greatest field value",
	"top":        "Returns the greatest N field values",
	"bottom":     "Returns the smallest N field values",
	"percentile": "Returns the Nth percentile field value",
	"sample":     "Returns a random sample of N field values",

	// Transformations
	"derivative":              "Returns the rate of change between subsequent field values",
	"non_negative_derivative": "Returns the non-negative rate of change between subsequent field values",
	"difference":              "Returns the result of subtraction between subsequent field values",
	"non_negative_difference": "Returns the non-negative result of subtraction between subsequent field values",
	"moving_average":          "Returns the rolling average across a window of subsequent field values",
	"cumulative_sum":          "Returns the running total of subsequent field values",
	"elapsed":                 "Returns the difference between subsequent field value timestamps",
	"holt_winters":            "Returns N predicted field values",

	// Math
	"abs":   "Returns the absolute value of the field value",
	"acos":  "Returns the arccosine (in radians) of the field value",
	"asin":  "Returns the arcsine (in radians) of the field value",
	"atan":  "Returns the arctangent (in radians) of the field value",
	"atan2": "Returns the arctangent of y/x in radians",
	"ceil":  "Returns the field value rounded up to the nearest integer",
	"cos":   "Returns the cosine of the field value",
	"exp":   "Returns the exponential of the field value",
	"floor": "Returns the field value rounded down to the nearest integer",
	"ln":    "Returns the natural logarithm of the field value",
	"log":   "Returns the logarithm of the field value with base b",
	"log2":  "Returns the logarithm of the field value to base 2",
	"log10": "Returns the logarithm of the field value to base 10",
	"pow":   "Returns the field value to the power of x",
	"round": "Returns the field value rounded to the nearest integer",
	"sin":   "Returns the sine of the field value",
	"sqrt":  "Returns the square root of the field value",
	"tan":   "Returns the tangent of the field value",

	// Time
	"now":  "Returns the current timestamp",
	"time": "Groups points into time buckets (GROUP BY time(...))",
}

// fluxFunctions are the pipeline functions added by the Flux-capable family.
var fluxFunctions = map[string]string{
	"from":            "Source data from a bucket",
	"range":           "Filter rows by time bounds",
	"filter":          "Filter rows with a predicate function",
	"aggregatewindow": "Downsample data into windows and aggregate each one",
	"group":           "Regroup rows by column values",
	"pivot":           "Rotate column values into new columns",
	"map":             "Apply a function to each row",
	"yield":           "Deliver a result set to the client",
	"keep":            "Keep only the listed columns",
	"drop":            "Remove the listed columns",
	"sort":            "Order rows by columns",
	"window":          "Group rows by time windows",
}

// showVocabulary lists what may follow SHOW, with feature gates.
var showVocabulary = []VerbEntry{
	{Label: "DATABASES", Doc: "List databases"},
	{Label: "MEASUREMENTS", Doc: "List measurements in the current database"},
	{Label: "SERIES", Doc: "List series in the current database"},
	{Label: "FIELD KEYS", Doc: "List field keys per measurement"},
	{Label: "TAG KEYS", Doc: "List tag keys per measurement"},
	{Label: "TAG VALUES", Doc: "List values for a tag key"},
	{Label: "RETENTION POLICIES", Doc: "List retention policies", Feature: FeatureRetentionPolicies},
	{Label: "CONTINUOUS QUERIES", Doc: "List continuous queries", Feature: FeatureContinuousQueries},
	{Label: "USERS", Doc: "List users", Feature: FeatureUserManagement},
	{Label: "GRANTS", Doc: "List privileges granted to a user", Feature: FeatureUserManagement},
	{Label: "SHARDS", Doc: "List shards"},
	{Label: "SHARD GROUPS", Doc: "List shard groups"},
	{Label: "SUBSCRIPTIONS", Doc: "List subscriptions"},
	{Label: "QUERIES", Doc: "List currently running queries"},
	{Label: "STATS", Doc: "Show server statistics"},
	{Label: "DIAGNOSTICS", Doc: "Show server diagnostics"},
}

// createVocabulary lists what may follow CREATE, with feature gates.
var createVocabulary = []VerbEntry{
	{Label: "DATABASE", Doc: "Create a database"},
	{Label: "RETENTION POLICY", Doc: "Create a retention policy", Feature: FeatureRetentionPolicies},
	{Label: "CONTINUOUS QUERY", Doc: "Create a continuous query", Feature: FeatureContinuousQueries},
	{Label: "USER", Doc: "Create a user", Feature: FeatureUserManagement},
	{Label: "SUBSCRIPTION", Doc: "Create a subscription"},
}

// dropVocabulary lists what may follow DROP, with feature gates.
var dropVocabulary = []VerbEntry{
	{Label: "DATABASE", Doc: "Delete a database"},
	{Label: "MEASUREMENT", Doc: "Delete a measurement and its data"},
	{Label: "SERIES", Doc: "Delete series from a measurement"},
	{Label: "RETENTION POLICY", Doc: "Delete a retention policy", Feature: FeatureRetentionPolicies},
	{Label: "CONTINUOUS QUERY", Doc: "Delete a continuous query", Feature: FeatureContinuousQueries},
	{Label: "USER", Doc: "Delete a user", Feature: FeatureUserManagement},
	{Label: "SHARD", Doc: "Delete a shard"},
	{Label: "SUBSCRIPTION", Doc: "Delete a subscription"},
}

var verbVocabularies = map[string][]VerbEntry{
	"SHOW":   showVocabulary,
	"CREATE": createVocabulary,
	"DROP":   dropVocabulary,
}

func mergeFunctions(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}

	return out
}

func init() {
	RegisterVersion(&VersionConfig{
		Family:    Family1x,
		Keywords:  influxKeywords,
		Functions: influxFunctions,
		DataTypes: []string{"float", "integer", "unsigned", "string", "boolean"},
		Features: Features{
			ContinuousQueries: true,
			RetentionPolicies: true,
			UserManagement:    true,
		},
		Verbs: verbVocabularies,
	})

	RegisterVersion(&VersionConfig{
		Family:    Family2x,
		Keywords:  influxKeywords,
		Functions: mergeFunctions(influxFunctions, fluxFunctions),
		DataTypes: []string{"float", "integer", "unsigned", "string", "boolean"},
		Features: Features{
			RetentionPolicies: true,
			Flux:              true,
		},
		Verbs: verbVocabularies,
	})

	RegisterVersion(&VersionConfig{
		Family:    Family3x,
		Keywords:  influxKeywords,
		Functions: influxFunctions,
		DataTypes: []string{"bigint", "double", "string", "boolean", "timestamp"},
		Features:  Features{},
		Verbs:     verbVocabularies,
	})
}
